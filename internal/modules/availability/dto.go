package availability

import (
	"time"

	"hotelops/internal/domain"
)

const dateLayout = "2006-01-02"

func parseStayQuery(checkIn, checkOut string) (domain.StayInterval, error) {
	in, err := time.Parse(dateLayout, checkIn)
	if err != nil {
		return domain.StayInterval{}, ErrValidation
	}
	out, err := time.Parse(dateLayout, checkOut)
	if err != nil {
		return domain.StayInterval{}, ErrValidation
	}
	return domain.NewStayInterval(in, out)
}

type conflictSummary struct {
	ID        int64  `json:"id"`
	Reference string `json:"reference"`
	GuestName string `json:"guest_name"`
	CheckIn   string `json:"check_in"`
	CheckOut  string `json:"check_out"`
	Status    string `json:"status"`
}

func toConflictSummaries(conflicts []domain.Reservation) []conflictSummary {
	out := make([]conflictSummary, 0, len(conflicts))
	for _, r := range conflicts {
		out = append(out, conflictSummary{
			ID:        r.ID,
			Reference: r.Reference,
			GuestName: r.GuestName,
			CheckIn:   r.Stay.CheckIn.Format(dateLayout),
			CheckOut:  r.Stay.CheckOut.Format(dateLayout),
			Status:    string(r.Status),
		})
	}
	return out
}
