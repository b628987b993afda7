package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xavierca1/site-leads/internal/entity"
)

func validInput() CreateLeadInput {
	return CreateLeadInput{
		Name:    "João Silva",
		Email:   "joao@example.com",
		Message: "Quero saber mais sobre o plano premium",
	}
}

func TestCreateLeadSuccess(t *testing.T) {
	repo := new(MockLeadRepository)
	notifier := new(MockNotifier)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Lead")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.Lead).ID = 1700000000000
		}).
		Return(nil)

	done := make(chan NotificationOutcome)
	notifier.On("Dispatch", mock.MatchedBy(func(l entity.Lead) bool {
		return l.ID == 1700000000000 && l.Name == "João Silva"
	})).Return((<-chan NotificationOutcome)(done))

	uc := NewCreateLeadUseCase(repo, notifier)
	out, err := uc.Execute(context.Background(), validInput())

	require.NoError(t, err)
	assert.Equal(t, int64(1700000000000), out.Lead.ID)
	assert.Equal(t, entity.StatusNew, out.Lead.Status)
	assert.Equal(t, entity.NotProvided, out.Lead.Phone)
	assert.Equal(t, entity.NotProvided, out.Lead.Company)
	assert.Equal(t, entity.DefaultSource, out.Lead.Source)
	assert.NotNil(t, out.Notified)

	repo.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestCreateLeadKeepsOptionalFields(t *testing.T) {
	repo := new(MockLeadRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	input := validInput()
	input.Phone = "(11) 99999-9999"
	input.Company = "Acme"
	input.Source = "instagram"

	out, err := NewCreateLeadUseCase(repo, nil).Execute(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, "(11) 99999-9999", out.Lead.Phone)
	assert.Equal(t, "Acme", out.Lead.Company)
	assert.Equal(t, "instagram", out.Lead.Source)
	assert.Nil(t, out.Notified)
}

func TestCreateLeadEmptyMessageFails(t *testing.T) {
	repo := new(MockLeadRepository)
	notifier := new(MockNotifier)

	input := validInput()
	input.Message = "   "
	input.Phone = "11999999999"
	input.Company = "Acme"

	out, err := NewCreateLeadUseCase(repo, notifier).Execute(context.Background(), input)

	assert.Nil(t, out)
	de, ok := AsDomainError(err)
	require.True(t, ok)
	assert.Equal(t, CodeValidation, de.Code)
	assert.Contains(t, de.Fields, "mensagem")
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	notifier.AssertNotCalled(t, "Dispatch", mock.Anything)
}

func TestCreateLeadReportsAllMissingFields(t *testing.T) {
	_, err := NewCreateLeadUseCase(new(MockLeadRepository), nil).Execute(context.Background(), CreateLeadInput{})

	de, ok := AsDomainError(err)
	require.True(t, ok)
	assert.Equal(t, []string{"nome", "email", "mensagem"}, de.Fields)
}

func TestCreateLeadRepositoryFailure(t *testing.T) {
	repo := new(MockLeadRepository)
	notifier := new(MockNotifier)
	repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("boom"))

	_, err := NewCreateLeadUseCase(repo, notifier).Execute(context.Background(), validInput())

	assert.True(t, IsTechnicalError(err))
	assert.False(t, IsDomainError(err))
	notifier.AssertNotCalled(t, "Dispatch", mock.Anything)
}
