package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
)

const (
	AccountServiceName     = "arcanum.v1alpha1.AccountService"
	AccountServiceRegister = "/" + AccountServiceName + "/Register"
	AccountServiceLogin    = "/" + AccountServiceName + "/Login"
)

type User struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	CreatedAt int64  `json:"createdAt"`
	UpdatedAt int64  `json:"updatedAt"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

// AccountServiceServer is the server API for AccountService.
type AccountServiceServer interface {
	Register(context.Context, *RegisterRequest) (*RegisterResponse, error)
	Login(context.Context, *LoginRequest) (*LoginResponse, error)
}

var AccountService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: AccountServiceName,
	HandlerType: (*AccountServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Register",
			Handler: unary(AccountServiceRegister, func(srv any, ctx context.Context, in *RegisterRequest) (*RegisterResponse, error) {
				return srv.(AccountServiceServer).Register(ctx, in)
			}),
		},
		{
			MethodName: "Login",
			Handler: unary(AccountServiceLogin, func(srv any, ctx context.Context, in *LoginRequest) (*LoginResponse, error) {
				return srv.(AccountServiceServer).Login(ctx, in)
			}),
		},
	},
	Metadata: "arcanum/v1alpha1/account.json",
}

func RegisterAccountServiceServer(s grpc.ServiceRegistrar, srv AccountServiceServer) {
	s.RegisterService(&AccountService_ServiceDesc, srv)
}

// AccountServiceClient is the client API for AccountService.
type AccountServiceClient interface {
	Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*RegisterResponse, error)
	Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error)
}

type accountServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewAccountServiceClient(cc grpc.ClientConnInterface) AccountServiceClient {
	return &accountServiceClient{cc: cc}
}

func (c *accountServiceClient) Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*RegisterResponse, error) {
	return invoke[RegisterResponse](ctx, c.cc, AccountServiceRegister, in, opts)
}

func (c *accountServiceClient) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error) {
	return invoke[LoginResponse](ctx, c.cc, AccountServiceLogin, in, opts)
}
