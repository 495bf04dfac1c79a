package config

type App struct {
	Port        string `env:"APP_PORT" default:"8080"`
	DatabaseURL string `env:"DATABASE_URL,required"`
	JWTSecret   string `env:"JWT_SECRET,required"`
	AmqpURL     string `env:"AMQP_URL"`
	EventQueue  string `env:"RESERVATION_EVENT_QUEUE" default:"reservation.events"`
	Env         string `env:"APP_ENV" default:"dev"`
}
