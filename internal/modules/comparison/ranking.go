package comparison

import (
	"sort"
	"sync"

	"github.com/rs/zerolog"

	"github.com/trichyravis/Stock-Analysis-5LensFramework/internal/modules/risk"
	"github.com/trichyravis/Stock-Analysis-5LensFramework/internal/modules/scoring"
)

// Service runs the comparison engine.
type Service struct {
	scorer  *scoring.Scorer
	riskSvc *risk.Service
	log     zerolog.Logger
}

// NewService creates a new comparison service.
func NewService(scorer *scoring.Scorer, riskSvc *risk.Service, log zerolog.Logger) *Service {
	return &Service{
		scorer:  scorer,
		riskSvc: riskSvc,
		log:     log.With().Str("component", "comparison").Logger(),
	}
}

// RankPeers scores every peer through the full lens pipeline and orders them
// by composite score descending, ties broken lexically by symbol so repeated
// runs on identical inputs yield identical orderings.
//
// Each peer's pipeline run is independent, so they are dispatched concurrently;
// the only synchronization is collecting results into pre-assigned slots.
func (s *Service) RankPeers(peers []Peer) []RankedPeer {
	ranked := make([]RankedPeer, len(peers))

	var wg sync.WaitGroup
	for i, peer := range peers {
		wg.Add(1)
		go func(i int, peer Peer) {
			defer wg.Done()
			profile := s.scorer.ScoreLenses(peer.Fundamentals, peer.RiskProfile)
			ranked[i] = RankedPeer{
				Symbol: peer.Symbol,
				Result: scoring.Aggregate(profile),
			}
		}(i, peer)
	}
	wg.Wait()

	sort.SliceStable(ranked, func(a, b int) bool {
		sa, sb := ranked[a].Result.Score, ranked[b].Result.Score
		switch {
		case sa != nil && sb != nil && *sa != *sb:
			return *sa > *sb
		case sa != nil && sb == nil:
			// Scored peers rank ahead of unscored ones.
			return true
		case sa == nil && sb != nil:
			return false
		default:
			return ranked[a].Symbol < ranked[b].Symbol
		}
	})

	for i := range ranked {
		ranked[i].Rank = i + 1
	}

	s.log.Debug().Int("peers", len(ranked)).Msg("Ranked peer group")
	return ranked
}
