package main

import (
	"net/http"
	"strings"

	"github.com/rs/cors"
)

func (app *application) routes(corsOrigins string) http.Handler {
	mux := http.NewServeMux()

	var (
		base = func(next http.Handler) http.Handler {
			return app.recoverPanic(app.logAndTraceRequest(secureHeaders(
				commonContext(app.timeout(next)))))
		}
		session = func(next http.Handler) http.Handler {
			return app.recoverPanic(noCache(app.sessionManager.LoadAndSave(
				app.logAndTraceRequest(secureHeaders(commonContext(
					app.resolveProfile(app.timeout(next))))))))
		}
	)

	mux.Handle("GET /api/healthy", base(http.HandlerFunc(app.healthy)))

	mux.Handle("GET /api/session", session(http.HandlerFunc(app.sessionGET)))
	mux.Handle("POST /api/session", session(http.HandlerFunc(app.sessionPOST)))

	mux.Handle("GET /api/profile", session(http.HandlerFunc(app.profileGET)))
	mux.Handle("POST /api/profile", session(http.HandlerFunc(app.profilePOST)))
	mux.Handle("GET /api/goal", session(http.HandlerFunc(app.goalGET)))
	mux.Handle("POST /api/goal", session(http.HandlerFunc(app.goalPOST)))

	mux.Handle("GET /api/metrics", session(http.HandlerFunc(app.metricsGET)))
	mux.Handle("GET /api/progress", session(http.HandlerFunc(app.progressGET)))

	mux.Handle("GET /api/evolution", session(http.HandlerFunc(app.evolutionGET)))
	mux.Handle("POST /api/evolution", session(http.HandlerFunc(app.evolutionPOST)))

	mux.Handle("GET /api/workouts/{date}", session(http.HandlerFunc(app.workoutGET)))
	mux.Handle("POST /api/workouts/{date}/log", session(http.HandlerFunc(app.workoutLogPOST)))
	mux.Handle("POST /api/workouts/{date}/exercises/log", session(http.HandlerFunc(app.exerciseLogPOST)))
	mux.Handle("GET /api/schedule/{date}", session(http.HandlerFunc(app.scheduleGET)))

	mux.Handle("GET /api/history/stats", session(http.HandlerFunc(app.historyStatsGET)))
	mux.Handle("GET /api/history/consistency", session(http.HandlerFunc(app.consistencyGET)))

	mux.Handle("GET /api/plan/macrocycles", session(http.HandlerFunc(app.macrocyclesGET)))
	mux.Handle("POST /api/plan/macrocycles", session(http.HandlerFunc(app.macrocyclesPOST)))
	mux.Handle("GET /api/plan/mesocycles", session(http.HandlerFunc(app.mesocyclesGET)))
	mux.Handle("POST /api/plan/mesocycles", session(http.HandlerFunc(app.mesocyclesPOST)))
	mux.Handle("POST /api/plan/weekly", session(http.HandlerFunc(app.weeklyAssignmentPOST)))
	mux.Handle("GET /api/plan/templates", session(http.HandlerFunc(app.templatesGET)))
	mux.Handle("POST /api/plan/templates", session(http.HandlerFunc(app.templatesPOST)))

	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins:   splitOrigins(corsOrigins),
		AllowedMethods:   []string{http.MethodGet, http.MethodPost},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	})
	return corsMiddleware.Handler(mux)
}

func splitOrigins(origins string) []string {
	if origins == "" {
		return nil
	}
	parts := strings.Split(origins, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
