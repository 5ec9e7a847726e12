package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/userdir/internal/logging"
	pb "github.com/dmitrijs2005/userdir/internal/proto"
	"github.com/dmitrijs2005/userdir/internal/server/models"
	"github.com/dmitrijs2005/userdir/internal/server/repositories/users"
	"github.com/dmitrijs2005/userdir/internal/server/services"
	"google.golang.org/grpc"
)

// directoryService is the service surface the handlers need; the concrete
// *services.DirectoryService satisfies it, tests can substitute a fake.
type directoryService interface {
	Register(ctx context.Context, firstName, lastName, email string, password []byte) (*services.AuthResult, error)
	Login(ctx context.Context, email string, password []byte) (*services.AuthResult, error)
	Search(ctx context.Context, q users.SearchQuery) (*services.SearchPage, error)
	UpdateProfile(ctx context.Context, userID string, upd services.ProfileUpdate) (*models.User, error)
}

type GRPCServer struct {
	pb.UnimplementedUserDirectoryServiceServer
	address   string
	directory directoryService
	logger    logging.Logger
	jwtSecret []byte
}

func NewgGRPCServer(a string, l logging.Logger, ds *services.DirectoryService, secretKey string) (*GRPCServer, error) {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		directory: ds,
		jwtSecret: []byte(secretKey),
	}, nil
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	// creates gRPC-server
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.accessTokenInterceptor))

	// registers service
	pb.RegisterUserDirectoryServiceServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
