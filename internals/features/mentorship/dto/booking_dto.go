package dto

type BulkCreateSlotsRequest struct {
	// Day in "2006-01-02" form.
	Day       string  `json:"day" validate:"required,datetime=2006-01-02"`
	StartHour int     `json:"start_hour" validate:"min=0,max=23"`
	EndHour   int     `json:"end_hour" validate:"required,min=1,max=24"`
	Title     *string `json:"title" validate:"omitempty,max=255"`
	Color     *string `json:"color" validate:"omitempty,max=32"`
}
