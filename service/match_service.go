package service

import (
	"errors"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"go.uber.org/zap"

	"scheme-finder/catalog"
	"scheme-finder/dto"
	"scheme-finder/utils"
)

// Lookup errors surfaced as 404s by the handlers.
var (
	ErrSchemeNotFound      = errors.New("Scheme not found")
	ErrBankNotFound        = errors.New("Bank not found")
	ErrNoComparableSchemes = errors.New("No schemes found for comparison")
)

// Result caps per endpoint family.
const (
	defaultMatchLimit = 10
	maxMatchLimit     = 50
	defaultListLimit  = 50
	maxListLimit      = 100
)

// MatchService runs every catalog operation: listing, lookup, search,
// eligibility filtering and ranking. It holds the injected read-only catalog
// and never writes to it.
type MatchService struct {
	catalog *catalog.Catalog
	logger  *zap.Logger
}

// NewMatchService constructs a MatchService.
func NewMatchService(cat *catalog.Catalog, logger *zap.Logger) *MatchService {
	return &MatchService{
		catalog: cat,
		logger:  logger,
	}
}

// SchemeCount reports how many schemes are loaded.
func (s *MatchService) SchemeCount() int {
	return s.catalog.Len()
}

// Banks returns the distinct bank names.
func (s *MatchService) Banks() *dto.BanksResponse {
	banks := s.catalog.Banks()
	return &dto.BanksResponse{Count: len(banks), Banks: banks}
}

// Categories returns the distinct category labels.
func (s *MatchService) Categories() *dto.CategoriesResponse {
	categories := s.catalog.Categories()
	return &dto.CategoriesResponse{Count: len(categories), Categories: categories}
}

// SchemeByID looks up a single scheme.
func (s *MatchService) SchemeByID(id string) (*dto.SchemeResponse, error) {
	scheme, ok := s.catalog.ByID(id)
	if !ok {
		return nil, ErrSchemeNotFound
	}
	return &dto.SchemeResponse{Scheme: scheme}, nil
}

// SchemesByBank lists one bank's schemes. The bank id may be the full name or
// the parenthesized short code.
func (s *MatchService) SchemesByBank(bankID string) (*dto.BankSchemesResponse, error) {
	bank, ok := s.catalog.ResolveBank(bankID)
	if !ok {
		return nil, ErrBankNotFound
	}
	schemes, _ := s.catalog.ByBank(bank)
	return &dto.BankSchemesResponse{Bank: bank, Count: len(schemes), Schemes: schemes}, nil
}

// List returns an unranked listing with optional case-insensitive substring
// filters on category and bank name.
func (s *MatchService) List(category, bank string, limit int) *dto.SchemeListResponse {
	all := s.catalog.All()

	filtered := make([]catalog.Scheme, 0, len(all))
	for _, scheme := range all {
		if category != "" && !containsFold(scheme.Category, category) {
			continue
		}
		if bank != "" && !containsFold(scheme.BankName, bank) {
			continue
		}
		filtered = append(filtered, scheme)
	}

	limit = capLimit(limit, defaultListLimit, maxListLimit)
	returned := filtered
	if len(returned) > limit {
		returned = returned[:limit]
	}

	return &dto.SchemeListResponse{
		Total:    len(all),
		Filtered: len(filtered),
		Returned: len(returned),
		Schemes:  returned,
	}
}

// Search ranks schemes by fuzzy match of the query against scheme names,
// bank names and descriptions. Closer matches (lower Levenshtein rank) come
// first.
func (s *MatchService) Search(query string, limit int) *dto.SearchResponse {
	type ranked struct {
		scheme catalog.Scheme
		rank   int
	}

	var matches []ranked
	for _, scheme := range s.catalog.All() {
		rank := fuzzy.RankMatchNormalizedFold(query, scheme.Name)
		if rank < 0 {
			rank = fuzzy.RankMatchNormalizedFold(query, scheme.BankName)
		}
		if rank < 0 {
			rank = fuzzy.RankMatchNormalizedFold(query, scheme.Description)
		}
		if rank < 0 {
			continue
		}
		matches = append(matches, ranked{scheme: scheme, rank: rank})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].rank < matches[j].rank
	})

	limit = capLimit(limit, defaultMatchLimit, maxMatchLimit)
	schemes := make([]catalog.Scheme, 0, len(matches))
	for _, m := range matches {
		if len(schemes) == limit {
			break
		}
		schemes = append(schemes, m.scheme)
	}

	return &dto.SearchResponse{Query: query, Count: len(schemes), Schemes: schemes}
}

// Filter runs the main matching flow: eligibility filter plus additive-bonus
// ranking. A purpose-only request bypasses scoring and returns the exact
// category matches in catalog order.
func (s *MatchService) Filter(req *dto.FilterRequest) *dto.FilterResponse {
	criteria := criteriaFromFilter(req)
	limit := capLimit(req.Limit, defaultMatchLimit, maxMatchLimit)

	if criteria.CategoryOnly() {
		return s.categoryShortcut(criteria, limit)
	}

	results := s.assemble(criteria, AdditiveScore, limit)
	s.logger.Debug("filter completed",
		zap.String("purpose", req.Purpose),
		zap.Int("matched", results.MatchedSchemes),
	)
	return results
}

// QuickFilter runs the standalone purpose-and-loan-amount flow with
// penalty-based ranking.
func (s *MatchService) QuickFilter(req *dto.QuickFilterRequest) *dto.FilterResponse {
	criteria := criteriaFromQuickFilter(req)
	limit := capLimit(req.Limit, defaultMatchLimit, maxMatchLimit)
	return s.assemble(criteria, PenaltyScore, limit)
}

// assemble filters the catalog through the eligibility predicate, decorates
// survivors with scores, sorts descending (stable, so equal scores keep
// catalog order) and truncates.
func (s *MatchService) assemble(criteria Criteria, score func(catalog.Scheme, Criteria) float64, limit int) *dto.FilterResponse {
	all := s.catalog.All()

	matched := make([]dto.MatchResult, 0)
	for _, scheme := range all {
		if !Eligible(scheme, criteria) {
			continue
		}
		value := score(scheme, criteria)
		matched = append(matched, dto.MatchResult{Scheme: scheme, MatchScore: &value})
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return *matched[i].MatchScore > *matched[j].MatchScore
	})

	results := matched
	if len(results) > limit {
		results = results[:limit]
	}

	return &dto.FilterResponse{
		Criteria:       echoCriteria(criteria),
		TotalSchemes:   len(all),
		MatchedSchemes: len(matched),
		Schemes:        results,
	}
}

// categoryShortcut returns exact category matches in catalog order without
// scores.
func (s *MatchService) categoryShortcut(criteria Criteria, limit int) *dto.FilterResponse {
	all := s.catalog.All()
	key := criteria.PurposeKey()

	matched := make([]dto.MatchResult, 0)
	for _, scheme := range all {
		if !criteria.IsTagPurpose() && utils.NormalizeKey(scheme.Category) != key {
			continue
		}
		if criteria.IsTagPurpose() && !purposeEligible(scheme, criteria) {
			continue
		}
		matched = append(matched, dto.MatchResult{Scheme: scheme})
	}

	results := matched
	if len(results) > limit {
		results = results[:limit]
	}

	return &dto.FilterResponse{
		Criteria:       echoCriteria(criteria),
		TotalSchemes:   len(all),
		MatchedSchemes: len(matched),
		Schemes:        results,
	}
}

// Personalize filters one bank's schemes by eligibility and flags schemes
// whose suitability tags cover the savings goal, sorting those first. Flags
// live on per-request copies; the catalog is never written.
func (s *MatchService) Personalize(req *dto.PersonalizeRequest) (*dto.PersonalizeResponse, error) {
	bank, ok := s.catalog.ResolveBank(req.BankID)
	if !ok {
		return nil, ErrBankNotFound
	}
	bankSchemes, _ := s.catalog.ByBank(bank)

	criteria := criteriaFromPersonalize(req)

	matched := make([]dto.MatchResult, 0)
	for _, scheme := range bankSchemes {
		if !Eligible(scheme, criteria) {
			continue
		}
		result := dto.MatchResult{Scheme: scheme}
		if req.SavingsGoal != "" && containsString(scheme.SuitableFor, req.SavingsGoal) {
			result.BestMatch = true
		}
		matched = append(matched, result)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].BestMatch && !matched[j].BestMatch
	})

	return &dto.PersonalizeResponse{
		Bank:           bank,
		TotalSchemes:   len(bankSchemes),
		MatchedSchemes: len(matched),
		Schemes:        matched,
		UserCriteria: dto.PersonalizeEcho{
			Age:           req.Age,
			Gender:        req.Gender,
			Category:      req.Category,
			MonthlyIncome: req.MonthlyIncome,
			Occupation:    req.Occupation,
			SavingsGoal:   req.SavingsGoal,
		},
	}, nil
}

// Compare resolves the requested ids against the catalog, in catalog order,
// returning the entries verbatim. Cardinality is validated by the DTO before
// this is called.
func (s *MatchService) Compare(req *dto.CompareRequest) (*dto.CompareResponse, error) {
	wanted := make(map[string]struct{}, len(req.SchemeIDs))
	for _, id := range req.SchemeIDs {
		wanted[id] = struct{}{}
	}

	var schemes []catalog.Scheme
	for _, scheme := range s.catalog.All() {
		if _, ok := wanted[scheme.ID]; ok {
			schemes = append(schemes, scheme)
		}
	}

	if len(schemes) == 0 {
		return nil, ErrNoComparableSchemes
	}

	return &dto.CompareResponse{ComparisonCount: len(schemes), Schemes: schemes}, nil
}

func echoCriteria(c Criteria) dto.CriteriaEcho {
	return dto.CriteriaEcho{
		Age:        c.Age,
		Income:     c.Income,
		Purpose:    c.Purpose,
		LoanAmount: c.LoanAmount,
		Bank:       c.Bank,
		Gender:     c.Gender,
		Category:   c.Category,
		Occupation: c.Occupation,
	}
}

func capLimit(limit, fallback, max int) int {
	if limit <= 0 {
		return fallback
	}
	if limit > max {
		return max
	}
	return limit
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func containsString(list []string, target string) bool {
	for _, entry := range list {
		if entry == target {
			return true
		}
	}
	return false
}
