package response

// AvailabilityResponse lists the whole slot grid next to the times already
// taken, so the client renders free/busy without extra math.
type AvailabilityResponse struct {
	Date        string   `json:"date"`
	AllSlots    []string `json:"all_slots"`
	BookedTimes []string `json:"booked_times"`
}
