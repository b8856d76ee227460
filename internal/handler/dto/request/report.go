package request

import "time"

type ReportQuery struct {
	From string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To   string `form:"to" binding:"omitempty,datetime=2006-01-02"`
}

// Range returns nil for a bound that was not supplied.
func (q ReportQuery) Range() (*time.Time, *time.Time, error) {
	from, err := parseOptionalDate(q.From)
	if err != nil {
		return nil, nil, err
	}
	to, err := parseOptionalDate(q.To)
	if err != nil {
		return nil, nil, err
	}
	return from, to, nil
}

func parseOptionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

type NotificationListQuery struct {
	Unread bool `form:"unread"`
	Limit  int  `form:"limit" binding:"omitempty,min=1,max=200"`
}
