package event

const UserRegistrationDestination string = "user_registration"

type UserRegistrationMessage struct {
	UserID      int64  `json:"user_id"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
}
