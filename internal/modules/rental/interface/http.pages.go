package transport

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"carRentalFe/internal/modules/rental/application/usecase"
	"carRentalFe/internal/modules/rental/domain"
)

// PageHandler serves every server-rendered page. Handlers only translate
// between HTTP and the page use cases; failure policy lives below them.
type PageHandler struct {
	pages *usecase.PageDataUseCase
}

func NewPageHandler(pages *usecase.PageDataUseCase) *PageHandler {
	return &PageHandler{pages: pages}
}

// Register wires the page routes. Static form routes are registered before the
// parameterized detail routes; echo resolves them with higher priority anyway.
func (h *PageHandler) Register(e *echo.Echo) {
	e.GET("/", h.Home)

	e.GET("/users", h.UserList)
	e.GET("/users/create", h.UserCreateForm)
	e.GET("/users/:id", h.UserDetail)

	e.GET("/cars", h.CarList)
	e.GET("/cars/create", h.CarCreateForm)
	e.GET("/cars/:id", h.CarDetail)
	e.GET("/cars/:id/edit", h.CarEditForm)

	e.GET("/bookings", h.BookingList)
	e.GET("/bookings/create", h.BookingCreateForm)
	e.GET("/bookings/:id", h.BookingDetail)

	e.GET("/contracts", h.ContractList)
	e.GET("/contracts/:id", h.ContractDetail)

	e.GET("/admin/dashboard", h.AdminDashboard)

	e.RouteNotFound("/*", h.NotFound)
}

// Home renders the landing page with the four entity counts. It always answers
// 200; unreachable endpoints simply count zero.
func (h *PageHandler) Home(c echo.Context) error {
	data := pageData("Trang Chủ - Car Rental", "home")
	for key, value := range h.pages.HomeStats(c.Request().Context()) {
		data[key] = value
	}
	return c.Render(http.StatusOK, "home", data)
}

func (h *PageHandler) UserList(c echo.Context) error {
	data := pageData("Danh Sách Người Dùng", "users")
	data["users"] = h.pages.EntityList(c.Request().Context(), "/users", "users")
	return c.Render(http.StatusOK, "users/list", data)
}

func (h *PageHandler) UserCreateForm(c echo.Context) error {
	return c.Render(http.StatusOK, "users/create", pageData("Thêm Người Dùng Mới", "users"))
}

func (h *PageHandler) UserDetail(c echo.Context) error {
	user, err := h.pages.EntityDetail(c.Request().Context(), "user", "/users/"+c.Param("id"))
	if err != nil {
		return h.renderError(c, http.StatusOK, "Không thể tải thông tin người dùng", err)
	}
	data := pageData("Chi Tiết Người Dùng", "users")
	data["user"] = user
	return c.Render(http.StatusOK, "users/detail", data)
}

func (h *PageHandler) CarList(c echo.Context) error {
	data := pageData("Danh Sách Xe", "cars")
	data["cars"] = h.pages.EntityList(c.Request().Context(), "/cars", "cars")
	return c.Render(http.StatusOK, "cars/list", data)
}

func (h *PageHandler) CarCreateForm(c echo.Context) error {
	data := pageData("Thêm Xe Mới", "cars")
	data["users"] = h.pages.CarCreateForm(c.Request().Context())
	return c.Render(http.StatusOK, "cars/create", data)
}

func (h *PageHandler) CarDetail(c echo.Context) error {
	car, err := h.pages.EntityDetail(c.Request().Context(), "car", "/cars/"+c.Param("id"))
	if err != nil {
		return h.renderError(c, http.StatusOK, "Không thể tải thông tin xe", err)
	}
	data := pageData("Chi Tiết Xe", "cars")
	data["car"] = car
	return c.Render(http.StatusOK, "cars/detail", data)
}

func (h *PageHandler) CarEditForm(c echo.Context) error {
	car, users, err := h.pages.CarEditForm(c.Request().Context(), "/cars/"+c.Param("id"))
	if err != nil {
		return h.renderError(c, http.StatusInternalServerError, "Không thể tải trang cập nhật xe", err)
	}
	data := pageData("Cập Nhật Xe", "cars")
	data["car"] = car
	data["users"] = users
	return c.Render(http.StatusOK, "cars/edit", data)
}

func (h *PageHandler) BookingList(c echo.Context) error {
	data := pageData("Danh Sách Đặt Xe", "bookings")
	data["bookings"] = h.pages.EntityList(c.Request().Context(), "/bookings", "bookings")
	return c.Render(http.StatusOK, "bookings/list", data)
}

func (h *PageHandler) BookingCreateForm(c echo.Context) error {
	users, cars := h.pages.BookingCreateForm(c.Request().Context())
	data := pageData("Tạo Đặt Xe Mới", "bookings")
	data["users"] = users
	data["cars"] = cars
	return c.Render(http.StatusOK, "bookings/create", data)
}

func (h *PageHandler) BookingDetail(c echo.Context) error {
	booking, err := h.pages.EntityDetail(c.Request().Context(), "booking", "/bookings/"+c.Param("id"))
	if err != nil {
		return h.renderError(c, http.StatusOK, "Không thể tải thông tin đặt xe", err)
	}
	data := pageData("Chi Tiết Đặt Xe", "bookings")
	data["booking"] = booking
	return c.Render(http.StatusOK, "bookings/detail", data)
}

func (h *PageHandler) ContractList(c echo.Context) error {
	data := pageData("Danh Sách Hợp Đồng", "contracts")
	data["contracts"] = h.pages.EntityList(c.Request().Context(), "/contracts", "contracts")
	return c.Render(http.StatusOK, "contracts/list", data)
}

func (h *PageHandler) ContractDetail(c echo.Context) error {
	contract, err := h.pages.EntityDetail(c.Request().Context(), "contract", "/contracts/"+c.Param("id"))
	if err != nil {
		return h.renderError(c, http.StatusOK, "Không thể tải thông tin hợp đồng", err)
	}
	data := pageData("Chi Tiết Hợp Đồng", "contracts")
	data["contract"] = contract
	return c.Render(http.StatusOK, "contracts/detail", data)
}

func (h *PageHandler) AdminDashboard(c echo.Context) error {
	overview, stats := h.pages.AdminDashboard(c.Request().Context())
	data := pageData("Dashboard Quản Trị", "admin")
	data["overview"] = overview
	data["stats"] = stats
	return c.Render(http.StatusOK, "admin/dashboard", data)
}

// NotFound renders the error page for any unmatched route.
func (h *PageHandler) NotFound(c echo.Context) error {
	view := domain.ErrorView{
		Title:   "404 - Không Tìm Thấy",
		Message: "Trang bạn tìm kiếm không tồn tại",
		Detail:  "Page not found",
	}
	return c.Render(http.StatusNotFound, "error", view.ViewData())
}

func (h *PageHandler) renderError(c echo.Context, status int, message string, err error) error {
	slog.Warn("page degraded to error view",
		slog.String("path", c.Request().URL.Path),
		slog.String("message", message),
		slog.Any("error", err))
	view := domain.ErrorView{Title: "Lỗi", Message: message, Detail: err.Error()}
	return c.Render(status, "error", view.ViewData())
}

func pageData(title, page string) map[string]any {
	return map[string]any{
		"title": title,
		"page":  page,
	}
}
