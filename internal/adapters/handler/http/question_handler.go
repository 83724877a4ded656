package http

import (
	"net/http"
	"time"

	"github.com/vncsmyrnk/polls/internal/core/domain"
	"github.com/vncsmyrnk/polls/internal/core/ports"
)

type QuestionHandler struct {
	service ports.QuestionService
}

func NewQuestionHandler(service ports.QuestionService) *QuestionHandler {
	return &QuestionHandler{
		service: service,
	}
}

type questionSummary struct {
	ID           int64     `json:"id"`
	QuestionText string    `json:"question_text"`
	PubDate      time.Time `json:"pub_date"`
}

type indexResponse struct {
	LatestQuestionList []questionSummary `json:"latest_question_list"`
}

type detailChoice struct {
	ID         int64  `json:"id"`
	ChoiceText string `json:"choice_text"`
}

type detailQuestion struct {
	questionSummary
	Choices []detailChoice `json:"choices"`
}

type detailResponse struct {
	Question     detailQuestion `json:"question"`
	ErrorMessage string         `json:"error_message,omitempty"`
}

type resultsChoice struct {
	ID         int64   `json:"id"`
	ChoiceText string  `json:"choice_text"`
	Votes      int64   `json:"votes"`
	Percentage float64 `json:"percentage"`
}

type resultsResponse struct {
	Question   questionSummary `json:"question"`
	TotalVotes int64           `json:"total_votes"`
	Choices    []resultsChoice `json:"choices"`
}

func summarize(q *domain.Question) questionSummary {
	return questionSummary{ID: q.ID, QuestionText: q.QuestionText, PubDate: q.PubDate}
}

func newDetailResponse(q *domain.Question, errorMessage string) detailResponse {
	choices := make([]detailChoice, 0, len(q.Choices))
	for _, c := range q.Choices {
		choices = append(choices, detailChoice{ID: c.ID, ChoiceText: c.ChoiceText})
	}
	return detailResponse{
		Question:     detailQuestion{questionSummary: summarize(q), Choices: choices},
		ErrorMessage: errorMessage,
	}
}

// Index godoc
// @Summary      Latest questions
// @Description  Returns the five most recently published questions
// @Tags         polls
// @Produce      json
// @Success      200
// @Router       /polls [get]
func (h *QuestionHandler) Index(w http.ResponseWriter, r *http.Request) {
	questions, err := h.service.ListLatest(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp := indexResponse{LatestQuestionList: make([]questionSummary, 0, len(questions))}
	for _, q := range questions {
		resp.LatestQuestionList = append(resp.LatestQuestionList, summarize(q))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *QuestionHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id, ok := questionIDParam(r)
	if !ok {
		http.Error(w, domain.ErrQuestionNotFound.Error(), http.StatusNotFound)
		return
	}

	question, err := h.service.GetQuestion(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newDetailResponse(question, ""))
}

// Results godoc
// @Summary      Question results
// @Description  Returns the vote count and share of every choice of a question
// @Tags         polls
// @Produce      json
// @Param        id   path      int  true  "Question ID"
// @Success      200
// @Failure      404
// @Router       /polls/{id}/results [get]
func (h *QuestionHandler) Results(w http.ResponseWriter, r *http.Request) {
	id, ok := questionIDParam(r)
	if !ok {
		http.Error(w, domain.ErrQuestionNotFound.Error(), http.StatusNotFound)
		return
	}

	results, err := h.service.GetResults(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp := resultsResponse{
		Question:   summarize(results.Question),
		TotalVotes: results.TotalVotes,
		Choices:    make([]resultsChoice, 0, len(results.Question.Choices)),
	}
	for _, c := range results.Question.Choices {
		stats := results.Stats[c.ID]
		resp.Choices = append(resp.Choices, resultsChoice{
			ID:         c.ID,
			ChoiceText: c.ChoiceText,
			Votes:      stats.VoteCount,
			Percentage: stats.Percentage,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}
