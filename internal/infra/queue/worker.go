package queue

import (
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// CardNotifier é quem avisa o cliente que o cartão saiu (e-mail hoje;
// outros canais entram implementando a mesma interface).
type CardNotifier interface {
	SendCardIssued(to, name, planName, cardNumber string) error
}

type Worker struct {
	Channel  *amqp.Channel
	Notifier CardNotifier
}

func NewWorker(ch *amqp.Channel, notifier CardNotifier) *Worker {
	return &Worker{
		Channel:  ch,
		Notifier: notifier,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName, // fila
		"",        // consumer
		false,     // auto-ack (manual é mais seguro)
		false,     // exclusive
		false,     // no-local
		false,     // no-wait
		nil,       // args
	)
	if err != nil {
		log.Fatalf("❌ Falha ao registrar consumidor RabbitMQ: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload CardIssuedPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("❌ [WORKER] JSON inválido: %s", err)
				// Mensagem malformada. Rejeita sem requeue para não travar a fila.
				d.Nack(false, false)
				continue
			}

			log.Printf("⚙️ [WORKER] Notificando emissão do cartão %s para %s", payload.CardNumber, payload.Name)

			if err := w.Notifier.SendCardIssued(payload.Email, payload.Name, payload.PlanName, payload.CardNumber); err != nil {
				log.Printf("❌ [WORKER] Falha ao notificar: %s", err)
				d.Nack(false, false)
			} else {
				d.Ack(false)
			}
		}
	}()

	log.Printf(" [*] Worker rodando e aguardando na fila '%s'", queueName)
	<-forever
}
