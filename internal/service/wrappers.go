package service

// AuthServiceWrapper and UserServiceWrapper define middleware composition
// for the services. Implementations wrap an existing service to add
// behavior such as validating.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

type UserServiceWrapper interface {
	Wrap(UserService) UserService
}
