package router

import (
	"database/sql"
	"net/http"
	"os"

	mem "mamas-embrace/internal/adapters/storage/memory"
	pg "mamas-embrace/internal/adapters/storage/postgres"
	"mamas-embrace/internal/domain/accounts"
	"mamas-embrace/internal/domain/children"
	"mamas-embrace/internal/domain/journal"
	"mamas-embrace/internal/domain/memories"
	"mamas-embrace/internal/domain/notifications"
	"mamas-embrace/internal/domain/profiles"
	"mamas-embrace/internal/domain/support"
	"mamas-embrace/internal/domain/vaccinations"
	"mamas-embrace/internal/middleware"
	"mamas-embrace/internal/platform/logger"
	"mamas-embrace/internal/ports/ai"
	"mamas-embrace/internal/ports/auth"
	"mamas-embrace/internal/ports/blob"
	"mamas-embrace/internal/ports/push"

	_ "mamas-embrace/docs"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	AuthVerifier auth.AuthVerifier     // puede ser nil (modo dev)
	Identity     auth.IdentityProvider // puede ser nil (accounts responde 503)

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	Uploader blob.Uploader  // nil => uploads deshabilitados
	Flows    ai.PromptFlows // nil => support responde 503
	Sender   push.Sender    // nil => notifications responde 502

	Log logger.Logger
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	log := opts.Log
	if log == nil {
		log = logger.Noop()
	}

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLogger(log))

	// La app corre en el browser/dispositivo contra esta API.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			}
		}
	}

	var (
		profilesRepo     profiles.Repository
		journalRepo      journal.Repository
		memoriesRepo     memories.Repository
		childrenRepo     children.Repository
		vaccinationsRepo vaccinations.Repository
		pushTokensRepo   notifications.Repository
	)

	if db != nil {
		profilesRepo = pg.NewProfilesRepo(db)
		journalRepo = pg.NewJournalRepo(db)
		memoriesRepo = pg.NewMemoriesRepo(db)
		childrenRepo = pg.NewChildrenRepo(db)
		vaccinationsRepo = pg.NewVaccinationsRepo(db)
		pushTokensRepo = pg.NewPushTokensRepo(db)
	} else {
		profilesRepo = mem.NewProfilesRepo()
		journalRepo = mem.NewJournalRepo()
		memoriesRepo = mem.NewMemoriesRepo()
		childrenRepo = mem.NewChildrenRepo()
		vaccinationsRepo = mem.NewVaccinationsRepo()
		pushTokensRepo = mem.NewPushTokensRepo()
	}

	// Services por módulo
	profilesSvc := profiles.NewService(profilesRepo)
	journalSvc := journal.NewService(journalRepo)
	memoriesSvc := memories.NewService(memoriesRepo)
	childrenSvc := children.NewService(childrenRepo)
	vaccinationsSvc := vaccinations.NewService(vaccinationsRepo)
	notificationsSvc := notifications.NewService(pushTokensRepo, opts.Sender)

	// Rutas por módulo
	accounts.RegisterRoutes(r, opts.Identity, profilesSvc, log)
	profiles.RegisterRoutes(r, profilesSvc)
	journal.RegisterRoutes(r, journalSvc, opts.Uploader)
	memories.RegisterRoutes(r, memoriesSvc, opts.Uploader)
	children.RegisterRoutes(r, childrenSvc)
	vaccinations.RegisterRoutes(r, vaccinationsSvc)
	support.RegisterRoutes(r, opts.Flows, log)
	notifications.RegisterRoutes(r, notificationsSvc, log)

	// Vistas gateadas por cookie de sesión (solo presencia: la validez
	// real del token la chequea cada handler de datos).
	r.Group(func(vr chi.Router) {
		vr.Use(middleware.SessionGate)
		vr.Get("/", servePage("Mama's Embrace"))
		vr.Get(middleware.HomeRoute, servePage("Home"))
		vr.Get(middleware.LoginRoute, servePage("Log in"))
		vr.Get("/register", servePage("Create account"))
	})

	return r
}

func servePage(title string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte("<!doctype html><title>" + title + " · Mama's Embrace</title><h1>" + title + "</h1>"))
	}
}
