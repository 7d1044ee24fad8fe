package messaging

import (
	"fmt"
	"log"
	"mediportal-service/internal/app/config"

	"github.com/rabbitmq/amqp091-go"
)

// NewRabbitMQ connects to the broker when RABBITMQ_ENABLED is set and returns
// nil otherwise. Lead capture works without a broker; only the queue
// notifications are skipped.
func NewRabbitMQ(driverConfig *config.DriverConfig) *amqp091.Connection {
	if !driverConfig.RabbitMQ.Enabled {
		log.Println("RabbitMQ disabled, lead queue notifications are off")
		return nil
	}

	connectionString := fmt.Sprintf(
		"amqp://%s:%s@%s:%s/",
		driverConfig.RabbitMQ.Username,
		driverConfig.RabbitMQ.Password,
		driverConfig.RabbitMQ.Host,
		driverConfig.RabbitMQ.Port,
	)
	conn, err := amqp091.Dial(connectionString)
	if err != nil {
		log.Fatalf("Failed to connect to rabbitMQ: %s", err.Error())
	}
	log.Println("Successfully connected to rabbitMQ")
	return conn
}
