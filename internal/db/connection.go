package db

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
)

// ConnectionDetails holds everything needed to open a Postgres
// connection for one request.
type ConnectionDetails struct {
	User     string
	Password string
	ServerIP string
	Port     int
	Schema   string
}

// GetPostgresConfig reads the connection details from the POSTGRES_*
// environment variables.
func GetPostgresConfig() (ConnectionDetails, error) {
	details := ConnectionDetails{
		User:     os.Getenv("POSTGRES_USER"),
		Password: os.Getenv("POSTGRES_PASSWORD"),
		ServerIP: os.Getenv("POSTGRES_CONTAINER_NAME"),
		Schema:   os.Getenv("POSTGRES_DB"),
	}

	port, err := strconv.Atoi(os.Getenv("POSTGRES_PORT"))
	if err != nil {
		return details, fmt.Errorf("invalid POSTGRES_PORT: %w", err)
	}
	details.Port = port

	return details, nil
}

func (d ConnectionDetails) connString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s",
		d.User, d.Password, d.ServerIP, d.Port, d.Schema)
}

// WithDB opens a connection for the duration of one request and hands
// it to the wrapped handler.
func WithDB(details ConnectionDetails, handler func(http.ResponseWriter, *http.Request, *pgx.Conn)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		conn, err := pgx.Connect(ctx, details.connString())
		if err != nil {
			log.Printf("Database connection failed: %v", err)
			http.Error(w, "Service temporarily unavailable", http.StatusServiceUnavailable)
			return
		}
		defer conn.Close(context.Background())

		handler(w, r, conn)
	}
}
