package service

import (
	"context"
	"encoding/csv"
	"io"
	"log"
	"math"
	"strconv"

	"github.com/Dharmub376/Digital-Chunab/internal/model"
	"github.com/Dharmub376/Digital-Chunab/internal/repository"
)

type ResultsService struct {
	votes *repository.VoteRepo
	cache *CacheService
}

func NewResultsService(votes *repository.VoteRepo, cache *CacheService) *ResultsService {
	return &ResultsService{votes: votes, cache: cache}
}

// Percentage returns round(count/total*100), defined as 0 when total is 0.
func Percentage(count, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(count) / float64(total) * 100))
}

// BuildResults folds raw tally rows into per-position results. Rows must
// arrive grouped by position with candidates in descending vote order,
// which is how VoteRepo.TallyAll emits them.
func BuildResults(rows []repository.TallyRow) []model.PositionResult {
	results := []model.PositionResult{}
	index := map[string]int{}

	for _, row := range rows {
		i, ok := index[row.PositionID]
		if !ok {
			i = len(results)
			index[row.PositionID] = i
			results = append(results, model.PositionResult{
				PositionID: row.PositionID,
				Position:   row.PositionTitle,
				Candidates: []model.CandidateResult{},
			})
		}
		results[i].TotalVotes += row.VoteCount
		results[i].Candidates = append(results[i].Candidates, model.CandidateResult{
			CandidateID: row.CandidateID,
			Name:        row.CandidateName,
			StudentID:   row.StudentID,
			VoteCount:   row.VoteCount,
		})
	}

	for i := range results {
		for j := range results[i].Candidates {
			c := &results[i].Candidates[j]
			c.Percentage = Percentage(c.VoteCount, results[i].TotalVotes)
		}
	}
	return results
}

// Results returns the tally for every position. The cached aggregate is
// served when fresh; the second return value reports a cache hit.
func (s *ResultsService) Results(ctx context.Context) ([]model.PositionResult, bool, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetResults(ctx); err != nil {
			log.Printf("cache: get results error: %v", err)
		} else if cached != nil {
			return cached, true, nil
		}
	}

	rows, err := s.votes.TallyAll(ctx)
	if err != nil {
		return nil, false, err
	}
	results := BuildResults(rows)

	if s.cache != nil {
		if err := s.cache.SetResults(ctx, results); err != nil {
			log.Printf("cache: set results error: %v", err)
		}
	}
	return results, false, nil
}

// WriteCSV streams the results as CSV: one row per candidate, prefixed by
// its race.
func WriteCSV(w io.Writer, results []model.PositionResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"position", "candidate", "student_id", "votes", "percentage"}); err != nil {
		return err
	}
	for _, pos := range results {
		for _, c := range pos.Candidates {
			record := []string{
				pos.Position,
				c.Name,
				c.StudentID,
				strconv.Itoa(c.VoteCount),
				strconv.Itoa(c.Percentage),
			}
			if err := cw.Write(record); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}
