package readstore

import (
	"strconv"
	"strings"

	"furnicraft/internal/usecase/queries"
)

// where accumulates AND-ed predicates. Clauses use ? for arguments, rewritten to $n in order.
type where struct {
	clauses []string
	args    []any
}

func (w *where) add(clause string, args ...any) {
	for _, a := range args {
		w.args = append(w.args, a)
		clause = strings.Replace(clause, "?", "$"+strconv.Itoa(len(w.args)), 1)
	}
	w.clauses = append(w.clauses, clause)
}

func (w *where) String() string {
	if len(w.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.clauses, " AND ")
}

// page appends LIMIT/OFFSET placeholders and returns the clause with the full argument list.
func (w *where) page(p queries.PageRequest) (string, []any) {
	args := append(append([]any{}, w.args...), p.Limit, p.Offset())
	n := len(args)
	return " LIMIT $" + strconv.Itoa(n-1) + " OFFSET $" + strconv.Itoa(n), args
}

// orderBy maps an API sort key to a column; id breaks ties so pages are stable.
func orderBy(columns map[string]string, key string, order queries.SortOrder, idColumn string) string {
	col, ok := columns[key]
	if !ok {
		col = columns["createdAt"]
	}
	dir := sortDir(order)
	return " ORDER BY " + col + " " + dir + ", " + idColumn + " " + dir
}

func sortDir(order queries.SortOrder) string {
	if order == queries.SortAsc {
		return "ASC"
	}
	return "DESC"
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// contains builds an ILIKE pattern matching raw anywhere, with wildcards in raw taken literally.
func contains(raw string) string {
	return "%" + likeEscaper.Replace(strings.TrimSpace(raw)) + "%"
}
