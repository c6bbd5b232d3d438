package request

import (
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/karaoke-backend/internal/domain"
)

var _ Publisher = &PublisherMock{}

type PublisherMock struct {
	PublishFunc func(venueID uuid.UUID, event domain.RequestEvent)

	calls struct {
		Publish []struct {
			VenueID uuid.UUID
			Event   domain.RequestEvent
		}
	}
	lockPublish sync.RWMutex
}

func (mock *PublisherMock) Publish(venueID uuid.UUID, event domain.RequestEvent) {
	if mock.PublishFunc == nil {
		panic("PublisherMock.PublishFunc: method is nil but Publisher.Publish was just called")
	}
	callInfo := struct {
		VenueID uuid.UUID
		Event   domain.RequestEvent
	}{VenueID: venueID, Event: event}
	mock.lockPublish.Lock()
	mock.calls.Publish = append(mock.calls.Publish, callInfo)
	mock.lockPublish.Unlock()
	mock.PublishFunc(venueID, event)
}

func (mock *PublisherMock) PublishCalls() []struct {
	VenueID uuid.UUID
	Event   domain.RequestEvent
} {
	mock.lockPublish.RLock()
	calls := mock.calls.Publish
	mock.lockPublish.RUnlock()
	return calls
}
