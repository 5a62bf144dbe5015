package invoice

type CreateInvoiceRequest struct {
	JobID       string  `json:"job_id" binding:"required"`
	TotalAmount float64 `json:"total_amount" binding:"required,gt=0"`
	DueInDays   int     `json:"due_in_days" binding:"omitempty,gte=0"`
	Notes       string  `json:"notes"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type ListInvoicesQuery struct {
	Limit  int `form:"limit,default=100"`
	Offset int `form:"offset,default=0"`
}
