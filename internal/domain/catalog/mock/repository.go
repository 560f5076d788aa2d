package mock

import (
	context "context"
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"

	cards "github.com/yuigaoka/hasudeck/hasudeck/cards"
	deck "github.com/yuigaoka/hasudeck/hasudeck/deck"
)

// MockRepository is a mock of Repository interface.
type MockRepository struct {
	ctrl     *gomock.Controller
	recorder *MockRepositoryMockRecorder
	isgomock struct{}
}

// MockRepositoryMockRecorder is the mock recorder for MockRepository.
type MockRepositoryMockRecorder struct {
	mock *MockRepository
}

// NewMockRepository creates a new mock instance.
func NewMockRepository(ctrl *gomock.Controller) *MockRepository {
	mock := &MockRepository{ctrl: ctrl}
	mock.recorder = &MockRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockRepository) EXPECT() *MockRepositoryMockRecorder {
	return m.recorder
}

// GetAllCards mocks base method.
func (m *MockRepository) GetAllCards(ctx context.Context) ([]*cards.Card, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetAllCards", ctx)
	ret0, _ := ret[0].([]*cards.Card)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetAllCards indicates an expected call of GetAllCards.
func (mr *MockRepositoryMockRecorder) GetAllCards(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetAllCards", reflect.TypeOf((*MockRepository)(nil).GetAllCards), ctx)
}

// GetCardByID mocks base method.
func (m *MockRepository) GetCardByID(ctx context.Context, id string) (*cards.Card, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetCardByID", ctx, id)
	ret0, _ := ret[0].(*cards.Card)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetCardByID indicates an expected call of GetCardByID.
func (mr *MockRepositoryMockRecorder) GetCardByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetCardByID", reflect.TypeOf((*MockRepository)(nil).GetCardByID), ctx, id)
}

// GetGradeChallenge mocks base method.
func (m *MockRepository) GetGradeChallenge(ctx context.Context, id string) (*deck.GradeChallenge, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetGradeChallenge", ctx, id)
	ret0, _ := ret[0].(*deck.GradeChallenge)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetGradeChallenge indicates an expected call of GetGradeChallenge.
func (mr *MockRepositoryMockRecorder) GetGradeChallenge(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetGradeChallenge", reflect.TypeOf((*MockRepository)(nil).GetGradeChallenge), ctx, id)
}

// GetLiveEvent mocks base method.
func (m *MockRepository) GetLiveEvent(ctx context.Context, id string) (*deck.LiveEvent, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetLiveEvent", ctx, id)
	ret0, _ := ret[0].(*deck.LiveEvent)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetLiveEvent indicates an expected call of GetLiveEvent.
func (mr *MockRepositoryMockRecorder) GetLiveEvent(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetLiveEvent", reflect.TypeOf((*MockRepository)(nil).GetLiveEvent), ctx, id)
}
