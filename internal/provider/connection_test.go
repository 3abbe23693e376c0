package provider

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	document string
	err      error
	queries  []Query
}

func (s *stubProvider) FetchJourneys(ctx context.Context, q Query) (string, error) {
	s.queries = append(s.queries, q)
	return s.document, s.err
}

type foreignHandle struct{}

func (foreignHandle) Descriptor() string { return "foreign" }

func TestConnection_OnConnectedDeliversProvider(t *testing.T) {
	stub := &stubProvider{}
	var delivered []Provider

	conn := NewConnection(func(p Provider) {
		delivered = append(delivered, p)
	})
	conn.OnConnected(ScheduleIdentity, NewServiceHandle(stub))

	require.Len(t, delivered, 1)
	assert.Same(t, stub, delivered[0])
}

func TestConnection_EachConnectDeliversOnce(t *testing.T) {
	first := &stubProvider{}
	second := &stubProvider{}
	var delivered []Provider

	conn := NewConnection(func(p Provider) {
		delivered = append(delivered, p)
	})
	conn.OnConnected(ScheduleIdentity, NewServiceHandle(first))
	conn.OnDisconnected(ScheduleIdentity)
	conn.OnConnected(ScheduleIdentity, NewServiceHandle(second))

	require.Len(t, delivered, 2)
	assert.Same(t, first, delivered[0])
	assert.Same(t, second, delivered[1])
}

func TestConnection_OnConnectedPanicsOnForeignHandle(t *testing.T) {
	called := false
	conn := NewConnection(func(p Provider) {
		called = true
	})

	assert.PanicsWithValue(t,
		"provider: bind to trainctl/ScheduleProvider returned provider.foreignHandle, want *provider.ServiceHandle",
		func() {
			conn.OnConnected(ScheduleIdentity, foreignHandle{})
		})
	assert.False(t, called)
}

func TestConnection_OnConnectedPanicsOnNilHandle(t *testing.T) {
	conn := NewConnection(func(p Provider) {})

	assert.Panics(t, func() {
		conn.OnConnected(ScheduleIdentity, nil)
	})
}

func TestConnection_OnDisconnectedDoesNotCallConsumer(t *testing.T) {
	called := false
	conn := NewConnection(func(p Provider) {
		called = true
	})

	assert.NotPanics(t, func() {
		conn.OnDisconnected(ScheduleIdentity)
	})
	assert.False(t, called)
}

func TestIdentity_String(t *testing.T) {
	assert.Equal(t, "trainctl/ScheduleProvider", ScheduleIdentity.String())
	assert.Equal(t, "a/b", Identity{Package: "a", Name: "b"}.String())
}

func TestRequestJourneys(t *testing.T) {
	t.Run("parses document", func(t *testing.T) {
		stub := &stubProvider{
			document: `{"journeys":[{"duration":60,"departure_date_time":"20230101T080000","arrival_date_time":"20230101T080100"}]}`,
		}
		q := Query{From: "admin:fr:35184", To: "admin:fr:35238"}

		journeys, err := RequestJourneys(context.Background(), stub, q)
		require.NoError(t, err)
		require.Len(t, journeys, 1)
		assert.Equal(t, int64(60), journeys[0].Duration())
		assert.Equal(t, []Query{q}, stub.queries)
	})

	t.Run("propagates fetch errors", func(t *testing.T) {
		stub := &stubProvider{err: &StatusError{StatusCode: 401, Body: "no token"}}

		_, err := RequestJourneys(context.Background(), stub, Query{From: "a", To: "b"})
		assert.ErrorIs(t, err, ErrUnexpectedStatus)
	})

	t.Run("wraps parse errors", func(t *testing.T) {
		stub := &stubProvider{document: `{"error":"no solution"}`}

		_, err := RequestJourneys(context.Background(), stub, Query{From: "a", To: "b"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parsing journeys from a to b")
	})
}
