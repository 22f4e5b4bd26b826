package services

import "errors"

// Общие ошибки, используемые в разных сервисах и маппинге HTTP.
var (
	// Ресурс не найден (универсальная)
	ErrNotFound = errors.New("requested resource not found")

	// Ошибки валидации
	ErrValidationFailed = errors.New("validation failed")
	ErrInvalidEmail     = errors.New("invalid email address")
	ErrInvalidPhone     = errors.New("invalid phone number")
	ErrInvalidContact   = errors.New("contact must be a valid email address or phone number")
	ErrInvalidStatus    = errors.New("invalid status value")

	// Ошибки аутентификации
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrSignupNotAllowed   = errors.New("admin signup secret is invalid")

	// Ошибки конфликтов
	ErrAdminEmailConflict = errors.New("email address is already in use")
	ErrAlreadySubscribed  = errors.New("already subscribed")

	// Ошибка объектного хранилища. Запись в БД к этому моменту уже удалена;
	// компенсирующей транзакции нет — см. контракт двухфазного удаления.
	ErrAssetDeleteFailed = errors.New("failed to delete stored asset")

	// Ошибка целостности: из сохранённого URL не выводится ключ объекта.
	ErrInvalidAssetReference = errors.New("stored image URL does not reference a known object")

	// Ошибки, специфичные для сущностей
	ErrSportNotFound          = errors.New("sport not found")
	ErrTestimonialNotFound    = errors.New("testimonial not found")
	ErrTeamMemberNotFound     = errors.New("team member not found")
	ErrMilestoneNotFound      = errors.New("milestone not found")
	ErrInfrastructureNotFound = errors.New("sports infrastructure not found")
	ErrJobPositionNotFound    = errors.New("job position not found")
	ErrApplicationNotFound    = errors.New("job application not found")
	ErrEnquiryNotFound        = errors.New("enquiry not found")
	ErrSubscriberNotFound     = errors.New("subscriber not found")

	ErrSportNameConflict = errors.New("sport name already exists")
	ErrJobPositionInUse  = errors.New("job position has applications and cannot be deleted")
)
