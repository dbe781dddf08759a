package auth

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

func (s *Service) Authenticate(email, password string) (User, error) {
	user, err := s.store.FindByEmail(email)
	if err != nil {
		return User{}, ErrInvalidCredentials
	}
	if err := CheckPassword(user.PasswordHash, password); err != nil {
		return User{}, ErrInvalidCredentials
	}
	return user, nil
}

func (s *Service) Register(name, email, password, role string) (User, error) {
	hash, err := HashPassword(password)
	if err != nil {
		return User{}, err
	}
	return s.store.Create(User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	})
}
