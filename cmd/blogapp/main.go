package main

import (
	"context"
	"database/sql"
	"io/ioutil"
	"log"
	"net/http"
	"os"
	"time"

	"blogclone/pkg/actor"
	"blogclone/pkg/comments"
	"blogclone/pkg/engagement"
	"blogclone/pkg/handlers"
	"blogclone/pkg/middleware"
	"blogclone/pkg/posts"
	"blogclone/pkg/session"
	"blogclone/pkg/user"
	"blogclone/pkg/views"

	"github.com/go-redis/redis/v8"
	_ "github.com/go-sql-driver/mysql"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

const (
	createUsersSchema = `CREATE TABLE IF NOT EXISTS users (
		id int(11) unsigned NOT NULL AUTO_INCREMENT,
		external_id VARCHAR(64) NOT NULL,
		username VARCHAR(50) NOT NULL,
		email VARCHAR(255) NOT NULL DEFAULT '',
		img VARCHAR(255) NOT NULL DEFAULT '',
		PRIMARY KEY (id),
		UNIQUE KEY external_id (external_id)
	) ENGINE=INNODB DEFAULT CHARSET=utf8;`

	createSavedPostsSchema = `CREATE TABLE IF NOT EXISTS saved_posts (
		id int(11) unsigned NOT NULL AUTO_INCREMENT,
		user_id int(11) unsigned NOT NULL,
		post_id VARCHAR(32) NOT NULL,
		PRIMARY KEY (id),
		UNIQUE KEY user_post (user_id, post_id)
	) ENGINE=INNODB DEFAULT CHARSET=utf8;`
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, relying on the environment")
	}

	app := &Application{
		MongoConnectionString: env("MONGO_URL", "mongodb://localhost:27017"),
		MongoDBName:           env("MONGO_DB", "blogclone_db"),
		MySQLConnectionString: env("MYSQL_DSN", "root:qwer1234@tcp(localhost:3306)/blogclone"),
		RedisOptions: &redis.Options{
			Addr:     env("REDIS_ADDR", "localhost:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       0,
		},
		ServerAddr:        env("SERVER_ADDR", "127.0.0.1:8000"),
		PublicKeyLocation: env("SESSION_PUBLIC_KEY", "key.rsa.pub"),
		WebhookSecret:     os.Getenv("WEBHOOK_SECRET"),
		TrustProxyHeaders: os.Getenv("TRUST_PROXY_HEADERS") == "true",
	}

	app.Run()
}

func env(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}

type Application struct {
	MongoConnectionString string
	MongoDBName           string
	MySQLConnectionString string
	RedisOptions          *redis.Options

	ServerAddr        string
	PublicKeyLocation string
	WebhookSecret     string
	TrustProxyHeaders bool

	HTTPServer *http.Server
}

func (a *Application) Run() {
	rdb := redis.NewClient(a.RedisOptions)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		panic(err.Error())
	}

	publicKeyBytes, err := ioutil.ReadFile(a.PublicKeyLocation)
	if err != nil {
		panic(err)
	}

	smJWT, err := session.NewManagerJWT(publicKeyBytes)
	if err != nil {
		panic(err)
	}
	sm := session.NewManagerRedis(rdb, smJWT)

	zapLogger, _ := zap.NewProduction()
	defer zapLogger.Sync() // flushes buffer, if any
	logger := zapLogger.Sugar()

	db, err := sql.Open("mysql", a.MySQLConnectionString)
	if err != nil {
		panic(err.Error())
	}
	defer db.Close()
	if err = db.Ping(); err != nil {
		panic(err)
	}
	if _, err = db.Exec(createUsersSchema); err != nil {
		panic(err)
	}
	if _, err = db.Exec(createSavedPostsSchema); err != nil {
		panic(err)
	}

	userRepo := user.NewUserRepoSQL(db)

	ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := posts.NewMongoClient(ctx, a.MongoConnectionString)
	if err != nil {
		panic(err)
	}
	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		panic(err)
	}

	mongoDB := client.Database(a.MongoDBName)
	postsRepo := posts.NewPostsRepoMongo(mongoDB)
	commentsRepo := comments.NewCommentsRepoMongo(mongoDB)

	ledger := views.NewViewLedgerMongo(mongoDB)
	ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err = ledger.EnsureIndexes(ctx); err != nil {
		panic(err)
	}

	counter := engagement.NewCounter(postsRepo, ledger, logger)
	resolver := &actor.Resolver{TrustProxyHeaders: a.TrustProxyHeaders}

	webhookSecret, err := handlers.ParseWebhookSecret(a.WebhookSecret)
	if err != nil {
		panic(err)
	}

	postsHandler := &handlers.PostHandler{
		PostsRepo:  postsRepo,
		UsersRepo:  userRepo,
		Engagement: counter,
		Actors:     resolver,
		Logger:     logger,
	}
	commentsHandler := &handlers.CommentHandler{
		CommentsRepo: commentsRepo,
		PostsRepo:    postsRepo,
		UsersRepo:    userRepo,
		Logger:       logger,
	}
	userHandler := &handlers.UserHandler{SavedRepo: userRepo, Logger: logger}
	webhookHandler := &handlers.WebhookHandler{
		Secret:   webhookSecret,
		Users:    userRepo,
		Sessions: sm,
		Logger:   logger,
	}

	r := mux.NewRouter()

	r.HandleFunc("/posts", postsHandler.List).Methods(http.MethodGet)
	r.HandleFunc("/posts", postsHandler.Create).Methods(http.MethodPost)
	r.HandleFunc("/posts/{slug}", postsHandler.GetBySlug).Methods(http.MethodGet)
	r.HandleFunc("/posts/{id}", postsHandler.Delete).Methods(http.MethodDelete)
	r.HandleFunc("/posts/{post_id}/like", postsHandler.Like).Methods(http.MethodPost)
	r.HandleFunc("/posts/{post_id}/increment-share", postsHandler.Share).Methods(http.MethodPost)

	r.HandleFunc("/comments/{post_id}", commentsHandler.List).Methods(http.MethodGet)
	r.HandleFunc("/comments/{post_id}", commentsHandler.Create).Methods(http.MethodPost)
	r.HandleFunc("/comments/{id}", commentsHandler.Delete).Methods(http.MethodDelete)

	r.HandleFunc("/users/saved", userHandler.Saved).Methods(http.MethodGet)
	r.HandleFunc("/users/save", userHandler.ToggleSaved).Methods(http.MethodPatch)

	r.HandleFunc("/webhooks/identity", webhookHandler.Handle).Methods(http.MethodPost)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlers.WriteResponse(w, "not found", http.StatusNotFound)
	})

	handler := middleware.Auth(logger, sm, userRepo, r)
	handler = middleware.Log(logger, handler)
	handler = middleware.Recover(logger, handler)

	srv := &http.Server{
		Handler:      handler,
		Addr:         a.ServerAddr,
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}
	a.HTTPServer = srv

	logger.Infof("Started server at %s", srv.Addr)
	log.Fatal(srv.ListenAndServe())
}
