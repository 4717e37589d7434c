package models

import "time"

// Категории тендера
const (
	CategoryGovernment = "government"
	CategoryPrivate    = "private"
)

// Статусы тендера (информативные, переходы не контролируются)
const (
	StatusOpen   = "open"
	StatusClosed = "closed"
	StatusDraft  = "draft"
)

// Роли пользователя
const (
	RolePoster     = "tender_poster"
	RoleSeeker     = "tender_seeker"
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super_admin"
)

// Сущность Тендера
type Tender struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	Email       string    `json:"email"`
	Location    string    `json:"location"`
	Budget      string    `json:"budget"`
	ExpiryDate  time.Time `json:"expiryDate"`
	Description string    `json:"description"`
	PosterName  string    `json:"posterName"`
	PosterID    string    `json:"posterId"`
	CreatedAt   time.Time `json:"createdAt"`
	Status      string    `json:"status"`
	ImageURL    string    `json:"imageUrl,omitempty"`
}

// NewTender - данные для создания тендера. ID и CreatedAt назначает репозиторий.
type NewTender struct {
	Title       string    `json:"title" validate:"required,max=100"`
	Category    string    `json:"category" validate:"required,oneof=government private"`
	Email       string    `json:"email" validate:"required"`
	Location    string    `json:"location" validate:"required"`
	Budget      string    `json:"budget" validate:"required"`
	ExpiryDate  time.Time `json:"expiryDate" validate:"required"`
	Description string    `json:"description" validate:"required,max=500"`
	PosterName  string    `json:"posterName"`
	PosterID    string    `json:"posterId" validate:"required"`
	Status      string    `json:"status"`
	ImageURL    string    `json:"imageUrl,omitempty"`
}

// TenderPatch - частичное обновление тендера. Неизменяемые поля
// (id, createdAt, posterId, posterName) здесь намеренно отсутствуют:
// лишние ключи в JSON отбрасываются при декодировании.
type TenderPatch struct {
	Title       *string    `json:"title"`
	Category    *string    `json:"category"`
	Email       *string    `json:"email"`
	Location    *string    `json:"location"`
	Budget      *string    `json:"budget"`
	ExpiryDate  *time.Time `json:"expiryDate"`
	Description *string    `json:"description"`
	Status      *string    `json:"status"`
	ImageURL    *string    `json:"imageUrl"`
}

// Сущность Отклика. Идентичность составная: пара (tenderId, userId).
type Application struct {
	TenderID  string    `json:"tenderId"`
	UserID    string    `json:"userId"`
	AppliedAt time.Time `json:"appliedAt"`
}

// Сущность Пользователя
type User struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	Avatar   string    `json:"avatar,omitempty"`
	JoinDate time.Time `json:"joinDate"`
	Company  string    `json:"company,omitempty"`
	Location string    `json:"location,omitempty"`
	Bio      string    `json:"bio,omitempty"`
}

// UserPatch - частичное обновление профиля. ID, роль и дата регистрации
// не редактируются.
type UserPatch struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Avatar   *string `json:"avatar"`
	Company  *string `json:"company"`
	Location *string `json:"location"`
	Bio      *string `json:"bio"`
}

// Stats - агрегаты для админ-панели
type Stats struct {
	TotalTenders      int `json:"totalTenders"`
	GovernmentTenders int `json:"governmentTenders"`
	PrivateTenders    int `json:"privateTenders"`
	ActiveTenders     int `json:"activeTenders"`
	ExpiredTenders    int `json:"expiredTenders"`
	TotalApplications int `json:"totalApplications"`
}

// IsAdmin сообщает, имеет ли роль админские права
func IsAdmin(role string) bool {
	return role == RoleAdmin || role == RoleSuperAdmin
}
