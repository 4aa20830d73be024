package dal

import (
	"log"

	"wht-deposit-api/internal/config"

	"github.com/streadway/amqp"
)

var RabbitConn *amqp.Connection
var RabbitCh *amqp.Channel

func InitRabbitMQ() {
	url := config.C.RabbitMQ.URL
	conn, err := amqp.Dial(url)
	if err != nil {
		log.Fatalf("rabbitmq dial failed: %v", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		log.Fatalf("rabbitmq channel failed: %v", err)
	}

	// exchange & queues
	if err := ch.ExchangeDeclare("deposit_events", "topic", true, false, false, false, nil); err != nil {
		log.Fatalf("exchange declare failed: %v", err)
	}
	if _, err := ch.QueueDeclare("deposit_success", true, false, false, false, nil); err != nil {
		log.Fatalf("queue declare deposit_success failed: %v", err)
	}
	if _, err := ch.QueueDeclare("deposit_stat", true, false, false, false, nil); err != nil {
		log.Fatalf("queue declare deposit_stat failed: %v", err)
	}
	if err := ch.QueueBind("deposit_success", "deposit.success", "deposit_events", false, nil); err != nil {
		log.Fatalf("queue bind deposit_success failed: %v", err)
	}
	if err := ch.QueueBind("deposit_stat", "deposit.stat", "deposit_events", false, nil); err != nil {
		log.Fatalf("queue bind deposit_stat failed: %v", err)
	}

	RabbitConn = conn
	RabbitCh = ch
}
