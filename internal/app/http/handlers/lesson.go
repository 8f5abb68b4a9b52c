package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"malacara/go_backend/internal/domain/lesson"
	"malacara/go_backend/internal/domain/money"
)

// maxCollectiveDays matches the longest collective course the school sells.
const maxCollectiveDays = 5

var (
	errLessonRange      = errors.New("headcount and duration must be > 0")
	errCollectiveLength = fmt.Errorf("collective lessons run at most %d days", maxCollectiveDays)
)

type lessonRequest struct {
	Kind      string `json:"kind"`
	Headcount int    `json:"headcount"`
	Duration  int    `json:"duration"`
}

type lessonResponse struct {
	Kind        string `json:"kind"`
	Description string `json:"description"`
	Detail      string `json:"detail"`
	UnitPrice   string `json:"unit_price"`
	Total       string `json:"total"`
}

// price validates the selection and prices it. A nil request means no lesson.
func (req *lessonRequest) price() (lesson.Quote, error) {
	if req == nil {
		return lesson.Price(lesson.Request{Kind: lesson.KindNone}), nil
	}
	kind, err := lesson.ParseKind(req.Kind)
	if err != nil {
		return lesson.Quote{}, err
	}
	if kind != lesson.KindNone && (req.Headcount < 1 || req.Duration < 1) {
		return lesson.Quote{}, errLessonRange
	}
	if kind == lesson.KindCollective && req.Duration > maxCollectiveDays {
		return lesson.Quote{}, errCollectiveLength
	}
	return lesson.Price(lesson.Request{Kind: kind, Headcount: req.Headcount, Duration: req.Duration}), nil
}

func newLessonResponse(q lesson.Quote) lessonResponse {
	return lessonResponse{
		Kind:        string(q.Kind),
		Description: q.Description,
		Detail:      q.Detail,
		UnitPrice:   money.Format(q.UnitPrice),
		Total:       money.Format(q.Total),
	}
}

func (h *Handlers) PriceLesson(w http.ResponseWriter, r *http.Request) {
	var req lessonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	q, err := req.price()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	h.writeJSON(w, http.StatusOK, newLessonResponse(q))
}
