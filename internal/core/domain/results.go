package domain

type ChoiceStats struct {
	VoteCount  int64
	Percentage float64
}

// QuestionResults holds the vote tally of a question, keyed by choice id.
type QuestionResults struct {
	Question   *Question
	TotalVotes int64
	Stats      map[int64]ChoiceStats
}

func NewQuestionResults(q *Question) *QuestionResults {
	res := &QuestionResults{
		Question: q,
		Stats:    make(map[int64]ChoiceStats, len(q.Choices)),
	}
	for _, c := range q.Choices {
		res.TotalVotes += c.Votes
	}

	for _, c := range q.Choices {
		percentage := 0.0
		if res.TotalVotes > 0 {
			percentage = (float64(c.Votes) / float64(res.TotalVotes)) * 100
		}
		res.Stats[c.ID] = ChoiceStats{
			VoteCount:  c.Votes,
			Percentage: percentage,
		}
	}
	return res
}
