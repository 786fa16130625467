package handlers

import (
	"net/http"
	"time"

	"deudasBack/internal/timeutil"
)

const fechaLayout = "2006-01-02"

func userIDFromContext(r *http.Request) (int, bool) {
	userID, ok := r.Context().Value("user_id").(int)
	return userID, ok
}

// parseFecha interprets a YYYY-MM-DD value as midnight in the business
// timezone, the same convention the query windows are built in.
func parseFecha(value string) (time.Time, error) {
	return time.ParseInLocation(fechaLayout, value, timeutil.Location())
}
