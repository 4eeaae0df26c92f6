package event

const UserActivationDestination string = "user_activation"

type UserActivationMessage struct {
	UserID      int64  `json:"user_id"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
}
