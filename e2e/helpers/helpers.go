package helpers

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MichalMitros/basket-service/internal/decoder"
	pgmodels "github.com/MichalMitros/basket-service/internal/platform/storage/gen/postgres/public/model"
	"github.com/MichalMitros/basket-service/internal/platform/storage/storagetesting"
	"github.com/MichalMitros/basket-service/pkg/v1/commander"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/require"
)

const (
	contentType  = "Content-Type"
	replyTimeout = 10 * time.Second
)

// WaitForRunToBeFinished is blocking helper function, returns retailer's latest run after it is finished.
func WaitForRunToBeFinished(t *testing.T, queryable qrm.Queryable, retailerID uuid.UUID) *pgmodels.ImportRun {
	t.Helper()

	for {
		<-time.After(time.Millisecond * 250)
		latestRun := storagetesting.GetLatestRun(t, queryable, retailerID)
		if latestRun != nil && latestRun.FinishedAt != nil {
			return latestRun
		}
	}
}

// PrepareMockedHTTPServer is helper function for mocking http srv and client.
// Returns function for setting feed file to return, feed number is from 0 to len(feedFiles) exclusive.
func PrepareMockedHTTPServer(t *testing.T, feedFiles [][]byte, statusCode int) (*httptest.Server, func(int)) {
	t.Helper()

	feedFileToReturnIx := 0

	srv := httptest.NewServer(http.HandlerFunc(func(wrt http.ResponseWriter, req *http.Request) {
		wrt.Header().Add(contentType, "application/xml")
		wrt.WriteHeader(statusCode)
		_, _ = wrt.Write(feedFiles[feedFileToReturnIx])
	}))

	t.Cleanup(func() {
		srv.Close()
	})

	return srv, func(i int) { feedFileToReturnIx = i }
}

// DeclareRMQExchange is helper function for declaring RMQ exchange.
func DeclareRMQExchange(t *testing.T, ch *amqp.Channel, exchange string) {
	t.Helper()

	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		require.FailNow(t, "can't declare exchange", exchange, err)
	}
}

// DeclareRMQQueue is helper function for declaring RMQ queue and binding and cleaning them after test is finished.
func DeclareRMQQueue(t *testing.T, channel *amqp.Channel, queueName, exchange, routingKey string) {
	t.Helper()

	_, err := channel.QueueDeclare(queueName, true, false, false, false, nil)
	if err != nil {
		require.FailNow(t, "can't declare queue", queueName, err)
	}

	err = channel.QueueBind(queueName, routingKey, exchange, false, nil)
	if err != nil {
		require.FailNow(t, "can't bind queue", queueName, routingKey, err)
	}

	t.Cleanup(func() {
		_, err := channel.QueueDelete(queueName, false, false, true)
		if err != nil {
			require.FailNow(t, "can't delete queue", queueName, err)
		}
	})
}

// ConsumeReplies is helper function for declaring exclusive reply queue and consuming replies from it.
func ConsumeReplies(t *testing.T, channel *amqp.Channel, queueName string) <-chan amqp.Delivery {
	t.Helper()

	_, err := channel.QueueDeclare(queueName, false, true, true, false, nil)
	if err != nil {
		require.FailNow(t, "can't declare reply queue", queueName, err)
	}

	deliveries, err := channel.Consume(queueName, "", true, true, false, false, nil)
	if err != nil {
		require.FailNow(t, "can't consume reply queue", queueName, err)
	}

	return deliveries
}

// WaitForReply is blocking helper function, returns next reply and decodes its data into dest.
func WaitForReply(t *testing.T, replies <-chan amqp.Delivery, dest any) commander.Reply {
	t.Helper()

	select {
	case delivery := <-replies:
		var reply commander.Reply
		if err := json.Unmarshal(delivery.Body, &reply); err != nil {
			require.FailNow(t, "can't unmarshal reply", err)
		}
		require.NotEmpty(t, delivery.CorrelationId, "reply should have correlation id")

		if dest != nil && len(reply.Data) > 0 && string(reply.Data) != "null" {
			if err := json.Unmarshal(reply.Data, dest); err != nil {
				require.FailNow(t, "can't unmarshal reply data", err)
			}
		}

		return reply
	case <-time.After(replyTimeout):
		require.FailNow(t, "reply not received")
		return commander.Reply{}
	}
}

// OffersToXML is helper function which wraps feed items into rss feed and returns it as byte slice.
func OffersToXML(t *testing.T, items []decoder.Item) []byte {
	t.Helper()

	feed := struct {
		XMLName xml.Name       `xml:"rss"`
		Version string         `xml:"version,attr"`
		Items   []decoder.Item `xml:"channel>item"`
	}{
		Version: "2.0",
		Items:   items,
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)

	encoder := xml.NewEncoder(&buf)
	if err := encoder.Encode(feed); err != nil {
		require.FailNow(t, "can't encode feed to xml", err)
	}

	if err := encoder.Close(); err != nil {
		require.FailNow(t, "can't close xml encoder", err)
	}

	return buf.Bytes()
}
