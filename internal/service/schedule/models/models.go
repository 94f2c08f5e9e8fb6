package models

import "github.com/m04kA/SPA-AppointmentService/internal/domain"

// BreakBlockPayload is one break window inside a day update or response.
type BreakBlockPayload struct {
	StartTime string  `json:"startTime"` // "13:00"
	EndTime   string  `json:"endTime"`   // "14:00"
	Label     *string `json:"label,omitempty"`
}

// UpdateDayRequest replaces the template for one weekday: the opening
// window plus the full set of break blocks.
type UpdateDayRequest struct {
	Weekday   int                 `json:"weekday"` // 1=Monday .. 7=Sunday
	IsClosed  bool                `json:"isClosed"`
	OpenTime  string              `json:"openTime,omitempty"`
	CloseTime string              `json:"closeTime,omitempty"`
	Breaks    []BreakBlockPayload `json:"breaks"`
}

// DayResponse is the template for one weekday.
type DayResponse struct {
	Weekday   int                 `json:"weekday"`
	Name      string              `json:"name"`
	IsClosed  bool                `json:"isClosed"`
	OpenTime  string              `json:"openTime,omitempty"`
	CloseTime string              `json:"closeTime,omitempty"`
	Breaks    []BreakBlockPayload `json:"breaks"`
}

// WeekResponse is the whole weekly template, Monday through Sunday. Days
// without a configured record appear closed.
type WeekResponse struct {
	Days []*DayResponse `json:"days"`
}

// BuildWeekResponse merges hour records and break blocks into the seven
// day views.
func BuildWeekResponse(hours []*domain.BusinessHours, breaks []*domain.BreakBlock) *WeekResponse {
	byWeekday := make(map[domain.Weekday]*DayResponse, 7)

	days := make([]*DayResponse, 0, 7)
	for wd := domain.Monday; wd <= domain.Sunday; wd++ {
		day := &DayResponse{
			Weekday:  int(wd),
			Name:     wd.String(),
			IsClosed: true,
			Breaks:   []BreakBlockPayload{},
		}
		byWeekday[wd] = day
		days = append(days, day)
	}

	for _, h := range hours {
		day, ok := byWeekday[h.Weekday]
		if !ok {
			continue
		}
		day.IsClosed = h.IsClosed
		if !h.IsClosed {
			day.OpenTime = string(h.OpenTime)
			day.CloseTime = string(h.CloseTime)
		}
	}

	for _, b := range breaks {
		day, ok := byWeekday[b.Weekday]
		if !ok {
			continue
		}
		day.Breaks = append(day.Breaks, BreakBlockPayload{
			StartTime: string(b.StartTime),
			EndTime:   string(b.EndTime),
			Label:     b.Label,
		})
	}

	return &WeekResponse{Days: days}
}
