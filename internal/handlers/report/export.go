package report

import (
	"encoding/csv"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"

	"Reportly/internal/analytics"
	"Reportly/internal/auth"
	"Reportly/internal/db"
)

// ExportHandler streams the user's reports as CSV and instruments the
// attempt/success/failure of every export.
func ExportHandler(tracker *analytics.Tracker) func(http.ResponseWriter, *http.Request, *pgx.Conn) {
	return func(w http.ResponseWriter, r *http.Request, conn *pgx.Conn) {
		tracker.Track(analytics.EventExportAttempt, nil)

		user, ok := auth.UserFromContext(r.Context())
		if !ok {
			tracker.Track(analytics.EventExportFailed, map[string]string{"reason": "no_session"})
			http.Error(w, "Not signed in", http.StatusUnauthorized)
			return
		}

		dbUser, err := db.GetUserByProviderID(r.Context(), conn, user.Provider, user.UserID)
		if err != nil {
			log.Printf("User lookup failed: %v", err)
			tracker.Track(analytics.EventExportFailed, map[string]string{"reason": "user_lookup"})
			http.Error(w, "Failed to load user data", http.StatusInternalServerError)
			return
		}

		reports, err := db.ListReportsByUser(r.Context(), conn, dbUser.ID)
		if err != nil {
			log.Printf("Report listing failed: %v", err)
			tracker.Track(analytics.EventExportFailed, map[string]string{"reason": "report_listing"})
			http.Error(w, "Failed to load reports", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="reports.csv"`)

		cw := csv.NewWriter(w)
		_ = cw.Write([]string{"id", "title", "status", "created_at"})
		for _, rep := range reports {
			_ = cw.Write([]string{
				strconv.Itoa(rep.ID),
				rep.Title,
				rep.Status,
				rep.CreatedAt.UTC().Format(time.RFC3339),
			})
		}
		cw.Flush()
		if err := cw.Error(); err != nil {
			// Headers are gone already; all that is left is to record
			// the failure.
			log.Printf("CSV export failed mid-stream: %v", err)
			tracker.Track(analytics.EventExportFailed, map[string]string{"reason": "write"})
			return
		}

		tracker.Track(analytics.EventExportSuccess, map[string]string{
			"format": "csv",
			"count":  strconv.Itoa(len(reports)),
		})
	}
}
