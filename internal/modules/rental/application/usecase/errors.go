package usecase

import (
	"fmt"

	"carRentalFe/internal/modules/rental/application/port"
)

func errEmptyDetail(key string) error {
	return fmt.Errorf("%w: %s body held no entity", port.ErrNotFound, key)
}
