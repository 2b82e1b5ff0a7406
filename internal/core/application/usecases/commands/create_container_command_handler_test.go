package commands_test

import (
	"testing"

	"cargo/internal/core/application/usecases/commands"
	"cargo/internal/core/domain/model/container"
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateContainerCommandHandler_Handle(t *testing.T) {
	tests := []struct {
		name     string
		kind     container.Kind
		options  commands.ContainerOptions
		expected string
	}{
		{"should build a refrigerated container", container.KindRefrigerated, commands.ContainerOptions{Product: "mleko", MinTemperature: 2}, "KON-C-1"},
		{"should build a liquid container", container.KindLiquid, commands.ContainerOptions{Hazardous: true}, "KON-L-1"},
		{"should build a gas container", container.KindGas, commands.ContainerOptions{Pressure: 10}, "KON-G-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			ctx := t.Context()
			cmd, err := commands.NewCreateContainerCommand(tt.kind, dims(4000, 700), tt.options)
			require.NoError(t, err)

			repo := new(MockContainerRepository)
			uow := new(MockUoW)
			factory := new(MockContainerUoWFactory)

			mock.InOrder(
				uow.On("Begin", ctx).Return(nil).Once(),
				uow.On("ContainerRepository").Return(repo).Once(),
				repo.On("Add", ctx, mock.MatchedBy(func(c container.Container) bool {
					return c.Kind() == tt.kind
				})).Return(nil).Once(),
				uow.On("Commit", ctx).Return(nil).Once(),
				uow.On("Rollback", ctx).Return(nil).Once(),
			)
			factory.On("Create").Return(uow).Once()

			handler := commands.NewCreateContainerCommandHandler(factory, container.NewFactory(kernel.NewSequence(), nil))

			// Act
			serial, err := handler.Handle(ctx, cmd)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.expected, serial.String())
			uow.AssertExpectations(t)
			repo.AssertExpectations(t)
		})
	}
}

func TestCreateContainerCommandHandler_Handle_InvalidDimensions(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewCreateContainerCommand(container.KindLiquid, container.Dimensions{}, commands.ContainerOptions{})
	require.NoError(t, err)

	uow := new(MockUoW)
	factory := new(MockContainerUoWFactory)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateContainerCommandHandler(factory, container.NewFactory(nil, nil))

	// Act
	serial, err := handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Empty(t, serial.String())
	uow.AssertExpectations(t)
}

func TestCreateContainerCommandHandler_Handle_SharedSequence(t *testing.T) {
	// Arrange
	ctx := t.Context()
	repo := new(MockContainerRepository)
	uow := new(MockUoW)
	factory := new(MockContainerUoWFactory)
	uow.On("Begin", ctx).Return(nil)
	uow.On("ContainerRepository").Return(repo)
	uow.On("Commit", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	repo.On("Add", ctx, mock.Anything).Return(nil)
	factory.On("Create").Return(uow)

	handler := commands.NewCreateContainerCommandHandler(factory, container.NewFactory(nil, nil))
	gas, err := commands.NewCreateContainerCommand(container.KindGas, dims(5000, 800), commands.ContainerOptions{Pressure: 10})
	require.NoError(t, err)
	liquid, err := commands.NewCreateContainerCommand(container.KindLiquid, dims(4000, 700), commands.ContainerOptions{})
	require.NoError(t, err)

	// Act
	first, err := handler.Handle(ctx, gas)
	require.NoError(t, err)
	second, err := handler.Handle(ctx, liquid)
	require.NoError(t, err)

	// Assert
	assert.Equal(t, "KON-G-1", first.String())
	assert.Equal(t, "KON-L-2", second.String())
	repo.AssertNumberOfCalls(t, "Add", 2)
}
