package repository

// DateRange is an optional inclusive filter on work_date. Empty bounds are
// open.
type DateRange struct {
	From string // YYYY-MM-DD
	To   string // YYYY-MM-DD
}

const entriesSelect = `
	SELECT te.id, te.user_id, te.project_id,
	       to_char(te.work_date, 'YYYY-MM-DD'),
	       to_char(te.start_time, 'HH24:MI'),
	       to_char(te.end_time, 'HH24:MI'),
	       te.break_minutes, te.duration_minutes, te.note,
	       u.name AS user_name, p.name AS project_name
	FROM time_entries te
	JOIN users u ON u.id = te.user_id
	JOIN projects p ON p.id = te.project_id`

const summarySelect = `
	SELECT te.user_id, u.name AS user_name,
	       COUNT(*)::int AS entries,
	       COALESCE(SUM(te.duration_minutes), 0)::int AS minutes
	FROM time_entries te
	JOIN users u ON u.id = te.user_id`

// dateFilter returns the WHERE clause for r on column and its arguments.
// Both bounds give an inclusive BETWEEN, a single bound an open inequality.
func dateFilter(r DateRange, column string) (string, []any) {
	switch {
	case r.From != "" && r.To != "":
		return " WHERE " + column + " BETWEEN $1 AND $2", []any{r.From, r.To}
	case r.From != "":
		return " WHERE " + column + " >= $1", []any{r.From}
	case r.To != "":
		return " WHERE " + column + " <= $1", []any{r.To}
	default:
		return "", nil
	}
}

// buildEntriesQuery builds the joined entry listing, newest first. It is
// the only query behind the JSON listing and both detail exports.
func buildEntriesQuery(r DateRange) (string, []any) {
	where, args := dateFilter(r, "te.work_date")
	return entriesSelect + where + " ORDER BY te.work_date DESC, te.id DESC", args
}

// buildSummaryQuery builds the per-user aggregate over the same range.
func buildSummaryQuery(r DateRange) (string, []any) {
	where, args := dateFilter(r, "te.work_date")
	return summarySelect + where + " GROUP BY te.user_id, u.name ORDER BY u.name, te.user_id", args
}

