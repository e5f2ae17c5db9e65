package response

type StatsResponse struct {
	TotalBookings    int     `json:"total_bookings"`
	Confirmed        int     `json:"confirmed"`
	Cancelled        int     `json:"cancelled"`
	CancelledPercent float64 `json:"cancelled_percent"`
	// Revenue sums confirmed bookings only; cancelled bookings are excluded.
	Revenue float64 `json:"revenue"`
	// OccupancyPercent is confirmed seats against total capacity: one event's
	// 100 seats when the stats are event-scoped, all events' seats otherwise.
	OccupancyPercent float64 `json:"occupancy_percent"`
}
