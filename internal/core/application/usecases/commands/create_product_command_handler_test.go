package commands_test

import (
	"strings"
	"testing"

	"entregaloya/internal/core/application/usecases/commands"
	"entregaloya/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateProductCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	actor := businessActor(9, 3)
	price := decimal.NewFromFloat(12.50)
	cmd, err := commands.NewCreateProductCommand(actor, 3, "Empanada", "de carne", &price, nil)
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	uow := new(MockCatalogUoW)
	store := new(MockObjectStore)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Add", ctx, mock.AnythingOfType("*product.Product")).Return(int64(5), nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCatalogUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateProductCommandHandler(factory, store)
	created, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, int64(5), created.ID())
	assert.Equal(t, "Empanada", created.Name())
	assert.True(t, created.Price().Equal(price))
	assert.Empty(t, created.ImageURL())
	store.AssertNotCalled(t, "Put",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestCreateProductCommandHandler_Handle_WithImage(t *testing.T) {
	ctx := t.Context()
	actor := businessActor(9, 3)
	content := strings.NewReader("fake png bytes")
	image := &commands.ImageAttachment{
		Filename:    "empanada.png",
		ContentType: "image/png",
		Size:        int64(content.Len()),
		Content:     content,
	}
	cmd, err := commands.NewCreateProductCommand(actor, 3, "Empanada", "", nil, image)
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	uow := new(MockCatalogUoW)
	store := new(MockObjectStore)

	mock.InOrder(
		store.On("Put", ctx, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "prod_3_") && strings.HasSuffix(key, ".png")
		}), content, image.Size, "image/png").
			Return("http://store.local/images/prod_3_x.png", nil).
			Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Add", ctx, mock.AnythingOfType("*product.Product")).Return(int64(6), nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCatalogUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateProductCommandHandler(factory, store)
	created, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "http://store.local/images/prod_3_x.png", created.ImageURL())
	store.AssertExpectations(t)
}

func TestCreateProductCommandHandler_Handle_CleansUpImageWhenCommitFails(t *testing.T) {
	ctx := t.Context()
	actor := businessActor(9, 3)
	content := strings.NewReader("fake png bytes")
	image := &commands.ImageAttachment{
		Filename:    "empanada.png",
		ContentType: "image/png",
		Size:        int64(content.Len()),
		Content:     content,
	}
	cmd, err := commands.NewCreateProductCommand(actor, 3, "Empanada", "", nil, image)
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	uow := new(MockCatalogUoW)
	store := new(MockObjectStore)

	var uploadedKey string
	mock.InOrder(
		store.On("Put", ctx, mock.MatchedBy(func(key string) bool {
			uploadedKey = key
			return strings.HasPrefix(key, "prod_3_")
		}), content, image.Size, "image/png").
			Return("http://store.local/images/prod_3_x.png", nil).
			Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Add", ctx, mock.AnythingOfType("*product.Product")).Return(int64(6), nil).Once(),
		uow.On("Commit", ctx).Return(assert.AnError).Once(),
		store.On("Delete", ctx, mock.MatchedBy(func(key string) bool {
			return key == uploadedKey
		})).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCatalogUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateProductCommandHandler(factory, store)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	store.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateProductCommandHandler_Handle_ForbiddenForOtherBusiness(t *testing.T) {
	ctx := t.Context()
	actor := businessActor(20, 8) // owns business 8, targets 3
	cmd, err := commands.NewCreateProductCommand(actor, 3, "Empanada", "", nil, nil)
	require.NoError(t, err)

	store := new(MockObjectStore)
	factory := new(MockCatalogUoWFactory)

	handler := commands.NewCreateProductCommandHandler(factory, store)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrAccessForbidden)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateProductCommandHandler_Handle_ForbiddenForCustomer(t *testing.T) {
	ctx := t.Context()
	actor := customerActor(7)
	cmd, err := commands.NewCreateProductCommand(actor, 3, "Empanada", "", nil, nil)
	require.NoError(t, err)

	store := new(MockObjectStore)
	factory := new(MockCatalogUoWFactory)

	handler := commands.NewCreateProductCommandHandler(factory, store)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrAccessForbidden)
}

func TestNewCreateProductCommand_RejectsBadImageExtension(t *testing.T) {
	actor := businessActor(9, 3)
	image := &commands.ImageAttachment{
		Filename:    "malware.exe",
		ContentType: "application/octet-stream",
		Size:        10,
		Content:     strings.NewReader("0123456789"),
	}

	_, err := commands.NewCreateProductCommand(actor, 3, "Empanada", "", nil, image)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewCreateProductCommand_MissingName(t *testing.T) {
	actor := businessActor(9, 3)

	_, err := commands.NewCreateProductCommand(actor, 3, "", "", nil, nil)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
