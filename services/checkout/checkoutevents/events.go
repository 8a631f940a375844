package checkoutevents

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/sereneshop/storefront/lib/myerrors"
	"github.com/sereneshop/storefront/lib/myevents"
)

const (
	TopicName             = "checkout"
	checkoutCompletedName = TopicName + ".completed"
)

type CheckoutEventService interface {
	OnCheckoutCompleted(c context.Context, topic string, event CheckoutCompleted) error
}

func DispatchEvent(c context.Context, reader io.Reader, service CheckoutEventService) error {
	envelope, err := myevents.ParseEventEnvelope(reader)
	if err != nil {
		return myerrors.NewInvalidInputError(err)
	}

	switch envelope.EventTypeName {
	case checkoutCompletedName:
		event := CheckoutCompleted{}
		err := json.Unmarshal([]byte(envelope.EventPayload), &event)
		if err != nil {
			return myerrors.NewInvalidInputError(err)
		}
		return service.OnCheckoutCompleted(c, envelope.Topic, event)
	default:
		return myerrors.NewNotImplementedError(fmt.Errorf("unknown event type %s", envelope.EventTypeName))
	}
}

type CheckoutCompleted struct {
	OrderUID   string
	TotalPrice float64
	ItemCount  int
}

func (e CheckoutCompleted) GetEventTypeName() string {
	return checkoutCompletedName
}

func (e CheckoutCompleted) GetAggregateName() string {
	return e.OrderUID
}
