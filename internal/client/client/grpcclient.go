package client

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/userdir/internal/client/models"
	"github.com/dmitrijs2005/userdir/internal/common"
	pb "github.com/dmitrijs2005/userdir/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.UserDirectoryServiceClient
	accessToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if s.accessToken != "" {
		ctx = withAccessToken(ctx, s.accessToken)
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}

func NewDirectoryClientService(endpointURL string) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	err := c.InitGRPCClient()
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {
	conn, err := grpc.NewClient(s.endpointURL, grpc.WithTransportCredentials(insecure.NewCredentials()), grpc.WithUnaryInterceptor(s.accessTokenInterceptor))
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewUserDirectoryServiceClient(conn)
	return nil
}

func (s *GRPCClient) SetAccessToken(token string) {
	s.accessToken = token
}

func (s *GRPCClient) Login(ctx context.Context, email string, password []byte) (*models.UserProfile, string, error) {
	req := &pb.LoginRequest{Email: email, Password: string(password)}

	resp, err := s.client.Login(ctx, req)
	if err != nil {
		return nil, "", s.mapError(err)
	}

	s.accessToken = resp.Token
	return userFromPB(resp.User), resp.Token, nil
}

func (s *GRPCClient) Register(ctx context.Context, firstName, lastName, email string, password []byte) (*models.UserProfile, string, error) {
	req := &pb.RegisterRequest{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Password:  string(password),
	}

	resp, err := s.client.Register(ctx, req)
	if err != nil {
		return nil, "", s.mapError(err)
	}

	s.accessToken = resp.Token
	return userFromPB(resp.User), resp.Token, nil
}

func (s *GRPCClient) Search(ctx context.Context, criteria models.SearchCriteria) (*models.SearchResult, error) {
	req := &pb.SearchUsersRequest{
		Search:    criteria.Search,
		City:      criteria.City,
		Country:   criteria.Country,
		Gender:    string(criteria.Gender),
		MinAge:    int32(criteria.MinAge),
		MaxAge:    int32(criteria.MaxAge),
		SortBy:    string(criteria.SortBy),
		SortOrder: string(criteria.SortOrder),
		Page:      int32(criteria.Page),
		Limit:     int32(criteria.Limit),
	}

	resp, err := s.client.SearchUsers(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}

	result := &models.SearchResult{
		Users: make([]models.UserProfile, 0, len(resp.Users)),
	}
	for _, u := range resp.Users {
		result.Users = append(result.Users, *userFromPB(u))
	}
	if p := resp.Pagination; p != nil {
		result.Pagination = models.Pagination{
			Page:       int(p.Page),
			Limit:      int(p.Limit),
			Total:      int(p.Total),
			TotalPages: int(p.TotalPages),
			HasNext:    p.HasNext,
			HasPrev:    p.HasPrev,
		}
	}
	return result, nil
}

func (s *GRPCClient) UpdateProfile(ctx context.Context, r models.ProfileUpdateRequest) (*models.UserProfile, error) {
	req := &pb.UpdateProfileRequest{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		City:        r.City,
		Country:     r.Country,
		Gender:      string(r.Gender),
		DateOfBirth: r.DateOfBirth,
		Bio:         r.Bio,
		Interests:   r.Interests,
		Skills:      r.Skills,
	}

	resp, err := s.client.UpdateProfile(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}

	return userFromPB(resp.User), nil
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	req := &pb.PingRequest{}

	resp, err := s.client.Ping(ctx, req)
	if err != nil {
		return s.mapError(err)
	}

	if resp.Status != "OK" {
		return ErrUnavailable
	}

	return nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func userFromPB(u *pb.UserProfile) *models.UserProfile {
	if u == nil {
		return nil
	}
	return &models.UserProfile{
		ID:          u.Id,
		Email:       u.Email,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		City:        u.City,
		Country:     u.Country,
		Gender:      models.Gender(u.Gender),
		DateOfBirth: u.DateOfBirth,
		Bio:         u.Bio,
		Interests:   u.Interests,
		Skills:      u.Skills,
		IsActive:    u.IsActive,
		CreatedAt:   u.CreatedAt,
		LastLoginAt: u.LastLoginAt,
	}
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	case codes.AlreadyExists:
		return ErrAlreadyExists
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
