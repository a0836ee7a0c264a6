package repository

import (
	"math"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Predicate 필수(AND) 조건과 선택(OR) 조건을 모아 한 번에 WHERE 로 컴파일한다.
// 빈 목록은 아무 조건도 만들지 않는다.
type Predicate struct {
	required []clause.Expression
	optional []clause.Expression
}

// And 필수 조건 추가
func (p *Predicate) And(expr clause.Expression) *Predicate {
	if expr != nil {
		p.required = append(p.required, expr)
	}
	return p
}

// Or 선택 조건 추가 (선택 조건끼리는 OR)
func (p *Predicate) Or(expr clause.Expression) *Predicate {
	if expr != nil {
		p.optional = append(p.optional, expr)
	}
	return p
}

func (p *Predicate) Empty() bool {
	return len(p.required) == 0 && len(p.optional) == 0
}

// Build required AND (optional1 OR optional2 ...), 조건이 없으면 nil
func (p *Predicate) Build() clause.Expression {
	exprs := make([]clause.Expression, 0, len(p.required)+1)
	exprs = append(exprs, p.required...)

	// 단일 OrConditions 는 gorm 이 앞 조건과 OR 로 잇기 때문에 그대로 넣는다
	switch len(p.optional) {
	case 0:
	case 1:
		exprs = append(exprs, p.optional[0])
	default:
		exprs = append(exprs, clause.Or(p.optional...))
	}

	if len(exprs) == 0 {
		return nil
	}
	return clause.And(exprs...)
}

// Apply 조건이 있을 때만 WHERE 추가
func (p *Predicate) Apply(db *gorm.DB) *gorm.DB {
	if expr := p.Build(); expr != nil {
		return db.Where(expr)
	}
	return db
}

const likeEscape = "!"

// containsExpr column 에 value 가 부분 문자열로 포함되는지 (와일드카드 이스케이프)
func containsExpr(column, value string) clause.Expression {
	return clause.Expr{
		SQL:  column + " LIKE ? ESCAPE '" + likeEscape + "'",
		Vars: []interface{}{"%" + escapeLike(value) + "%"},
	}
}

func escapeLike(s string) string {
	r := strings.NewReplacer(likeEscape, likeEscape+likeEscape, "%", likeEscape+"%", "_", likeEscape+"_")
	return r.Replace(s)
}

// dedup 순서를 유지하며 공백/중복 제거
func dedup(groups ...[]string) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, names := range groups {
		for _, n := range names {
			n = strings.TrimSpace(n)
			if n == "" {
				continue
			}
			if _, ok := seen[n]; ok {
				continue
			}
			seen[n] = struct{}{}
			out = append(out, n)
		}
	}
	return out
}

// offsetOf 곱이 넘치면 마지막 페이지 너머로 보낸다 (음수 OFFSET 은 gorm 이 생략함)
func offsetOf(page, pageSize int) int {
	if page <= 0 || pageSize <= 0 {
		return 0
	}
	if page > math.MaxInt/pageSize {
		return math.MaxInt
	}
	return page * pageSize
}
