package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"time"

	"lifecycle/internal/core/application/usecases/commands"
	"lifecycle/internal/core/domain/model/kernel"
	"lifecycle/internal/core/domain/model/parcel"
	"lifecycle/internal/core/domain/model/shipment"
	"lifecycle/internal/core/domain/model/status"
	"lifecycle/internal/core/domain/workflow"
	"lifecycle/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockParcelRepository struct{ mock.Mock }

func (m *MockParcelRepository) Add(ctx context.Context, p *parcel.Parcel) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockParcelRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.Parcel), args.Error(1)
}

func (m *MockParcelRepository) UpdateStatus(
	ctx context.Context, id kernel.UUID, from, to status.Value, at time.Time,
) error {
	args := m.Called(ctx, id, from, to, at)
	return args.Error(0)
}

func (m *MockParcelRepository) GetAllInStatus(_ context.Context, _ status.Value) ([]*parcel.Parcel, error) {
	return nil, errors.New("not implemented in mock")
}

type MockParcelUoW struct{ mock.Mock }

func (m *MockParcelUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockParcelUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockParcelUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockParcelUoW) ParcelRepository() ports.ParcelRepository {
	args := m.Called()
	return args.Get(0).(ports.ParcelRepository)
}

type MockParcelUoWFactory struct{ mock.Mock }

func (m *MockParcelUoWFactory) Create() commands.ParcelUoW {
	args := m.Called()
	return args.Get(0).(commands.ParcelUoW)
}

type MockShipmentRepository struct{ mock.Mock }

func (m *MockShipmentRepository) Add(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) UpdateStatus(
	ctx context.Context, id kernel.UUID, from, to status.Value, at time.Time,
) error {
	args := m.Called(ctx, id, from, to, at)
	return args.Error(0)
}

func (m *MockShipmentRepository) GetAllInStatus(_ context.Context, _ status.Value) ([]*shipment.Shipment, error) {
	return nil, errors.New("not implemented in mock")
}

type MockShipmentUoW struct{ mock.Mock }

func (m *MockShipmentUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockShipmentUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockShipmentUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockShipmentUoW) ShipmentRepository() ports.ShipmentRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipmentRepository)
}

type MockShipmentUoWFactory struct{ mock.Mock }

func (m *MockShipmentUoWFactory) Create() commands.ShipmentUoW {
	args := m.Called()
	return args.Get(0).(commands.ShipmentUoW)
}

// recordingDispatcher collects the automation actions handed to it.
type recordingDispatcher struct {
	mu         sync.Mutex
	dispatched []string
}

func (d *recordingDispatcher) Dispatch(_ context.Context, action string, _ workflow.TransitionContext) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.dispatched = append(d.dispatched, action)
	return nil
}

func (d *recordingDispatcher) actions() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]string, len(d.dispatched))
	copy(out, d.dispatched)
	return out
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
