package assign

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"tekstil-golang/internal/storage"
)

func TestDeriveStatus(t *testing.T) {
	cases := []struct {
		name     string
		workshop string
		selected bool
		current  storage.OrderStatus
		want     storage.OrderStatus
	}{
		{"completed keyword", "Tamamlanan İşler", true, storage.StatusInProgress, storage.StatusCompleted},
		{"completed biten", "Biten Ürünler", true, storage.StatusInProgress, storage.StatusCompleted},
		{"completed tamamlandı", "Tamamlandı Rafı", true, storage.StatusUnassigned, storage.StatusCompleted},
		{"completed case-insensitive", "TAMAMLANAN", true, storage.StatusInProgress, storage.StatusCompleted},
		{"unassigned keyword", "Atanmamış İşler", true, storage.StatusInProgress, storage.StatusUnassigned},
		{"unassigned without diacritics", "atanmamis isler", true, storage.StatusInProgress, storage.StatusUnassigned},
		{"regular workshop", "Dikim Atölyesi", true, storage.StatusUnassigned, storage.StatusInProgress},
		{"regular workshop keeps in progress", "Kesim", true, storage.StatusInProgress, storage.StatusInProgress},
		{"no selection keeps current", "", false, storage.StatusCancelled, storage.StatusCancelled},
		{"completed wins over unassigned", "Atanmamış Biten", true, storage.StatusInProgress, storage.StatusCompleted},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := DeriveStatus(tc.workshop, tc.selected, tc.current)
			assert.Equal(t, tc.want, got)
		})
	}
}

type MockAssignStorage struct {
	mock.Mock
}

func (m *MockAssignStorage) GetOrder(ctx context.Context, id int) (*storage.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.Order), args.Error(1)
}

func (m *MockAssignStorage) GetWorkshop(ctx context.Context, id int) (*storage.Workshop, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.Workshop), args.Error(1)
}

func (m *MockAssignStorage) AssignOrder(ctx context.Context, orderID int, workshopID int, operatorID *int, status storage.OrderStatus) error {
	args := m.Called(ctx, orderID, workshopID, operatorID, status)
	return args.Error(0)
}

func (m *MockAssignStorage) SaveModelCost(ctx context.Context, req storage.SaveModelCost) (int64, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAssignStorage) SaveOrderLog(ctx context.Context, orderID int, action, detail string) error {
	args := m.Called(ctx, orderID, action, detail)
	return args.Error(0)
}

func intPtr(i int) *int { return &i }

func TestAssign_Success(t *testing.T) {
	st := new(MockAssignStorage)

	before := &storage.Order{ID: 7, Status: storage.StatusUnassigned, Quantity: 10}
	after := &storage.Order{ID: 7, Status: storage.StatusInProgress, WorkshopID: intPtr(3), Quantity: 10}

	st.On("GetOrder", mock.Anything, 7).Return(before, nil).Once()
	st.On("GetWorkshop", mock.Anything, 3).Return(&storage.Workshop{ID: 3, Name: "Dikim Atölyesi"}, nil)
	st.On("AssignOrder", mock.Anything, 7, 3, intPtr(11), storage.StatusInProgress).Return(nil)
	st.On("SaveOrderLog", mock.Anything, 7, "assign", mock.Anything).Return(nil)
	st.On("GetOrder", mock.Anything, 7).Return(after, nil).Once()

	svc := NewService(st)
	res, err := svc.Assign(context.Background(), 7, Request{WorkshopID: 3, OperatorID: intPtr(11)})

	assert.NoError(t, err)
	assert.Equal(t, storage.StatusInProgress, res.Order.Status)
	assert.Equal(t, 0, res.CostLinesTotal)
	st.AssertExpectations(t)
}

func TestAssign_CompletedWorkshopSetsCompleted(t *testing.T) {
	st := new(MockAssignStorage)

	before := &storage.Order{ID: 7, Status: storage.StatusInProgress}
	after := &storage.Order{ID: 7, Status: storage.StatusCompleted}

	st.On("GetOrder", mock.Anything, 7).Return(before, nil).Once()
	st.On("GetWorkshop", mock.Anything, 5).Return(&storage.Workshop{ID: 5, Name: "Tamamlanan İşler"}, nil)
	st.On("AssignOrder", mock.Anything, 7, 5, (*int)(nil), storage.StatusCompleted).Return(nil)
	st.On("SaveOrderLog", mock.Anything, 7, "assign", mock.Anything).Return(nil)
	st.On("GetOrder", mock.Anything, 7).Return(after, nil).Once()

	svc := NewService(st)
	res, err := svc.Assign(context.Background(), 7, Request{WorkshopID: 5})

	assert.NoError(t, err)
	assert.Equal(t, storage.StatusCompleted, res.Order.Status)
	st.AssertExpectations(t)
}

func TestAssign_WorkshopRequired(t *testing.T) {
	svc := NewService(new(MockAssignStorage))

	_, err := svc.Assign(context.Background(), 7, Request{})
	assert.ErrorIs(t, err, ErrWorkshopRequired)
}

func TestAssign_RejectsCompletedOrder(t *testing.T) {
	st := new(MockAssignStorage)
	st.On("GetOrder", mock.Anything, 7).
		Return(&storage.Order{ID: 7, Status: storage.StatusCompleted}, nil)

	svc := NewService(st)
	_, err := svc.Assign(context.Background(), 7, Request{WorkshopID: 3})

	assert.ErrorIs(t, err, ErrOrderCompleted)
	st.AssertNotCalled(t, "AssignOrder")
}

// A failing cost line must not roll back the assignment or the lines
// saved before it.
func TestAssign_PartialCostLines(t *testing.T) {
	st := new(MockAssignStorage)

	before := &storage.Order{ID: 7, Status: storage.StatusUnassigned}
	after := &storage.Order{ID: 7, Status: storage.StatusInProgress}

	lineOK := storage.SaveModelCost{ModelID: 1, CostItemID: 10, TotalCost: 100, Currency: "TRY"}
	lineBad := storage.SaveModelCost{ModelID: 1, CostItemID: 11, TotalCost: 200, Currency: "TRY"}
	lineNever := storage.SaveModelCost{ModelID: 1, CostItemID: 12, TotalCost: 300, Currency: "TRY"}

	st.On("GetOrder", mock.Anything, 7).Return(before, nil).Once()
	st.On("GetWorkshop", mock.Anything, 3).Return(&storage.Workshop{ID: 3, Name: "Kesim"}, nil)
	st.On("AssignOrder", mock.Anything, 7, 3, (*int)(nil), storage.StatusInProgress).Return(nil)
	st.On("SaveOrderLog", mock.Anything, 7, "assign", mock.Anything).Return(nil)
	st.On("SaveModelCost", mock.Anything, lineOK).Return(int64(1), nil)
	st.On("SaveModelCost", mock.Anything, lineBad).Return(int64(0), errors.New("duplicate"))
	st.On("GetOrder", mock.Anything, 7).Return(after, nil).Once()

	svc := NewService(st)
	res, err := svc.Assign(context.Background(), 7, Request{
		WorkshopID:   3,
		PendingCosts: []storage.SaveModelCost{lineOK, lineBad, lineNever},
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, res.CostLinesTotal)
	assert.Equal(t, 1, res.CostLinesSaved)
	assert.Error(t, res.CostLineErr)
	st.AssertNotCalled(t, "SaveModelCost", mock.Anything, lineNever)
	st.AssertExpectations(t)
}
