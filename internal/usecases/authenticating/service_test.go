package authenticating

import (
	"errors"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/backbone-api/infrastructure/repository/mocks"
	"github.com/vfg2006/backbone-api/internal/config"
	"github.com/vfg2006/backbone-api/internal/domain"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func newTestService(ctrl *gomock.Controller) (*Service, *mocks.MockUserRepository) {
	userRepo := mocks.NewMockUserRepository(ctrl)
	service := &Service{
		userRepo: userRepo,
		cfg:      &config.Config{SecretKey: "segredo_de_teste"},
	}
	return service, userRepo
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestService_CreateUser(t *testing.T) {
	t.Run("Dados obrigatórios ausentes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _ := newTestService(ctrl)

		user, err := service.CreateUser(&domain.User{Email: "ana@backbone.local"})
		assert.Nil(t, user)
		assert.ErrorIs(t, err, ErrMissingRequiredData)
	})

	t.Run("Email já cadastrado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, userRepo := newTestService(ctrl)
		userRepo.EXPECT().GetUserByEmail("ana@backbone.local").
			Return(&domain.User{ID: 7, Email: "ana@backbone.local"}, nil)

		user, err := service.CreateUser(&domain.User{
			Email:        "Ana@Backbone.local",
			Name:         "Ana",
			Lastname:     "Souza",
			PasswordHash: "senha123",
		})
		assert.Nil(t, user)
		assert.ErrorIs(t, err, ErrUserAlreadyExists)
	})

	t.Run("Criação com papel padrão e conta desativada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, userRepo := newTestService(ctrl)
		userRepo.EXPECT().GetUserByEmail("ana@backbone.local").Return(nil, nil)
		userRepo.EXPECT().CreateUser(gomock.Any()).
			DoAndReturn(func(user *domain.User) (*domain.User, error) {
				// Senha deve ser armazenada como hash, nunca em texto puro
				assert.NotEqual(t, "senha123", user.PasswordHash)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("senha123")))
				assert.Equal(t, 3, user.RoleID)
				assert.False(t, user.Active)
				user.ID = 10
				return user, nil
			})

		user, err := service.CreateUser(&domain.User{
			Email:        " Ana@Backbone.local ",
			Name:         "Ana",
			Lastname:     "Souza",
			PasswordHash: "senha123",
		})
		require.NoError(t, err)
		assert.Equal(t, 10, user.ID)
		assert.Equal(t, "ana@backbone.local", user.Email)
	})
}

func TestService_LoginUser(t *testing.T) {
	passwordHash := ""

	tests := []struct {
		name        string
		email       string
		password    string
		setupMock   func(userRepo *mocks.MockUserRepository)
		expectedErr error
	}{
		{
			name:        "Email ou senha vazios",
			email:       "",
			password:    "senha123",
			setupMock:   func(userRepo *mocks.MockUserRepository) {},
			expectedErr: ErrMissingRequiredData,
		},
		{
			name:     "Usuário não encontrado",
			email:    "ghost@backbone.local",
			password: "senha123",
			setupMock: func(userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByEmail("ghost@backbone.local").Return(nil, nil)
			},
			expectedErr: ErrUserNotFound,
		},
		{
			name:     "Conta desativada",
			email:    "ana@backbone.local",
			password: "senha123",
			setupMock: func(userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByEmail("ana@backbone.local").
					Return(&domain.User{ID: 7, Active: false}, nil)
			},
			expectedErr: ErrUserDisabled,
		},
		{
			name:     "Senha incorreta",
			email:    "ana@backbone.local",
			password: "senha_errada",
			setupMock: func(userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByEmail("ana@backbone.local").
					Return(&domain.User{ID: 7, Active: true, PasswordHash: passwordHash}, nil)
			},
			expectedErr: ErrInvalidCredentials,
		},
		{
			name:     "Erro de banco de dados",
			email:    "ana@backbone.local",
			password: "senha123",
			setupMock: func(userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByEmail("ana@backbone.local").
					Return(nil, errors.New("conexão perdida"))
			},
			expectedErr: ErrDatabaseOperation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, userRepo := newTestService(ctrl)
			passwordHash = hashPassword(t, "senha123")
			tt.setupMock(userRepo)

			token, err := service.LoginUser(tt.email, tt.password)
			assert.Empty(t, token)
			require.Error(t, err)
			if tt.expectedErr != ErrDatabaseOperation {
				assert.ErrorIs(t, err, tt.expectedErr)
			}
		})
	}

	t.Run("Login com sucesso gera token válido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, userRepo := newTestService(ctrl)
		userRepo.EXPECT().GetUserByEmail("ana@backbone.local").
			Return(&domain.User{
				ID:           7,
				Name:         "Ana",
				Lastname:     "Souza",
				Email:        "ana@backbone.local",
				Active:       true,
				RoleID:       1,
				PasswordHash: hashPassword(t, "senha123"),
			}, nil)

		token, err := service.LoginUser("Ana@Backbone.local", "senha123")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := service.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, 7, claims.UserID)
		assert.Equal(t, "Ana", claims.UserName)
		assert.Equal(t, 1, claims.UserRoleID)
	})
}

func TestService_ValidateToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _ := newTestService(ctrl)

	t.Run("Token malformado", func(t *testing.T) {
		claims, err := service.ValidateToken("nao-e-um-token")
		assert.Error(t, err)
		assert.Nil(t, claims)
	})

	t.Run("Token assinado com outro segredo", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, &domain.Claims{UserID: 7})
		signed, err := token.SignedString([]byte("outro_segredo"))
		require.NoError(t, err)

		claims, err := service.ValidateToken(signed)
		assert.Error(t, err)
		assert.Nil(t, claims)
	})
}

func TestService_ChangePassword(t *testing.T) {
	t.Run("Usuário não encontrado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, userRepo := newTestService(ctrl)
		userRepo.EXPECT().GetUserByID(7).Return(nil, nil)

		err := service.ChangePassword(7, "senha123", "senha456")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("Senha atual incorreta", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, userRepo := newTestService(ctrl)
		userRepo.EXPECT().GetUserByID(7).
			Return(&domain.User{ID: 7, PasswordHash: hashPassword(t, "senha123")}, nil)

		err := service.ChangePassword(7, "senha_errada", "senha456")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Nova senha igual à atual", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, userRepo := newTestService(ctrl)
		userRepo.EXPECT().GetUserByID(7).
			Return(&domain.User{ID: 7, PasswordHash: hashPassword(t, "senha123")}, nil)

		err := service.ChangePassword(7, "senha123", "senha123")
		assert.ErrorIs(t, err, ErrSamePassword)
	})

	t.Run("Nova senha fraca", func(t *testing.T) {
		tests := []struct {
			name        string
			newPassword string
		}{
			{name: "Curta demais", newPassword: "ab1"},
			{name: "Somente letras", newPassword: "abcdefgh"},
			{name: "Somente números", newPassword: "12345678"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				service, userRepo := newTestService(ctrl)
				userRepo.EXPECT().GetUserByID(7).
					Return(&domain.User{ID: 7, PasswordHash: hashPassword(t, "senha123")}, nil)

				err := service.ChangePassword(7, "senha123", tt.newPassword)
				assert.ErrorIs(t, err, ErrWeakPassword)
			})
		}
	})

	t.Run("Troca com sucesso persiste o novo hash", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, userRepo := newTestService(ctrl)
		userRepo.EXPECT().GetUserByID(7).
			Return(&domain.User{ID: 7, PasswordHash: hashPassword(t, "senha123")}, nil)
		userRepo.EXPECT().UpdateUser(gomock.Any()).
			DoAndReturn(func(user *domain.User) error {
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("senha456")))
				return nil
			})

		err := service.ChangePassword(7, "senha123", "senha456")
		assert.NoError(t, err)
	})
}

func TestService_GetUserProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, userRepo := newTestService(ctrl)
	userRepo.EXPECT().GetUserByID(7).
		Return(&domain.User{ID: 7, Name: "Ana", PasswordHash: "hash_sensivel"}, nil)

	user, err := service.GetUserProfile(7)
	require.NoError(t, err)
	assert.Equal(t, "Ana", user.Name)
	// O hash nunca deve vazar para fora do serviço
	assert.Empty(t, user.PasswordHash)
}

func TestService_UpdateUser(t *testing.T) {
	strPtr := func(s string) *string { return &s }
	boolPtr := func(b bool) *bool { return &b }

	t.Run("ID obrigatório", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _ := newTestService(ctrl)
		err := service.UpdateUser(&domain.UpdateUserRequest{})
		assert.Error(t, err)
	})

	t.Run("Atualização parcial preserva os demais campos", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, userRepo := newTestService(ctrl)
		userRepo.EXPECT().GetUserByID(7).
			Return(&domain.User{ID: 7, Name: "Ana", Lastname: "Souza", Email: "ana@backbone.local", Active: false}, nil)
		userRepo.EXPECT().UpdateUser(gomock.Any()).
			DoAndReturn(func(user *domain.User) error {
				assert.Equal(t, "Beatriz", user.Name)
				assert.Equal(t, "Souza", user.Lastname)
				assert.True(t, user.Active)
				return nil
			})

		err := service.UpdateUser(&domain.UpdateUserRequest{
			ID:     7,
			Name:   strPtr("Beatriz"),
			Active: boolPtr(true),
		})
		assert.NoError(t, err)
	})
}
