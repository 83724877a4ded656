package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/vncsmyrnk/polls/internal/core/domain"
	"github.com/vncsmyrnk/polls/internal/core/ports"
)

type VoteHandler struct {
	service   ports.VoteService
	questions ports.QuestionService
}

func NewVoteHandler(service ports.VoteService, questions ports.QuestionService) *VoteHandler {
	return &VoteHandler{
		service:   service,
		questions: questions,
	}
}

const maxFormMemory = 1 << 20

func resultsPath(questionID int64) string {
	return fmt.Sprintf("/api/polls/%d/results", questionID)
}

// Vote godoc
// @Summary      Casts a vote
// @Description  Adds one vote to the submitted choice and redirects to the results. Without a valid choice the question detail is returned with an error message.
// @Tags         polls
// @Accept       x-www-form-urlencoded,mpfd
// @Param        id      path      int     true  "Question ID"
// @Param        choice  formData  string  true  "Choice ID"
// @Success      303
// @Failure      404
// @Router       /polls/{id}/vote [post]
func (h *VoteHandler) Vote(w http.ResponseWriter, r *http.Request) {
	questionID, ok := questionIDParam(r)
	if !ok {
		http.Error(w, domain.ErrQuestionNotFound.Error(), http.StatusNotFound)
		return
	}

	input := ports.VoteInput{
		QuestionID: questionID,
		Choice:     choiceFormValue(r),
	}

	outcome, err := h.service.CastVote(r.Context(), input)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			h.redisplayDetail(w, r, questionID, verr.Message)
			return
		}
		writeError(w, r, err)
		return
	}

	slog.Debug("vote cast", "question_id", outcome.QuestionID, "choice_id", outcome.ChoiceID, "votes", outcome.Votes)
	http.Redirect(w, r, resultsPath(outcome.QuestionID), http.StatusSeeOther)
}

// choiceFormValue returns the last "choice" field of a urlencoded or
// multipart body. An unparsable body counts as no selection so the question
// is still resolved first.
func choiceFormValue(r *http.Request) string {
	if err := r.ParseForm(); err != nil {
		slog.Debug("failed to parse vote form", "error", err)
		return ""
	}
	if err := r.ParseMultipartForm(maxFormMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		slog.Debug("failed to parse multipart vote form", "error", err)
		return ""
	}

	values := r.PostForm["choice"]
	if len(values) == 0 {
		return ""
	}
	return values[len(values)-1]
}

func (h *VoteHandler) redisplayDetail(w http.ResponseWriter, r *http.Request, questionID int64, message string) {
	question, err := h.questions.GetQuestion(r.Context(), questionID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newDetailResponse(question, message))
}
