package config

import (
	"github.com/go-chi/chi/v5"
	"github.com/rabbitmq/amqp091-go"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type (
	Bootstrap struct {
		Router         *chi.Mux
		MongoDB        *mongo.Client
		RabbitMQ       *amqp091.Connection
		Logger         *zap.Logger
		DriverConfig   *DriverConfig
		InternalConfig *InternalConfig
	}

	InternalConfig struct {
		App      App
		Frontend Frontend
	}

	DriverConfig struct {
		MongoDB  MongoDB
		RabbitMQ RabbitMQ
		Logger   Logger
	}

	App struct {
		Env             string
		Port            string
		MaxRequests     int
		ShutdownTimeout int
	}

	Frontend struct {
		BaseURL string
	}

	MongoDB struct {
		URI    string
		DbName string
	}

	RabbitMQ struct {
		Enabled  bool
		Port     string
		Host     string
		Username string
		Password string
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)
