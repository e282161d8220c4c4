package requests

type UpdateTransactionStatus struct {
	Status string `json:"status" validate:"required,oneof=Pending Completed Denied"`
}
