// Package patient assembles the registration profile from locally verified
// KYC fields and keeps the server-side patient record in reach.
package patient

import (
	"context"
	"log/slog"

	api "renalize/contracts/api"
	"renalize/internal/cache"
	"renalize/internal/gateway"
	"renalize/internal/result"
	"renalize/internal/token"
	dErrors "renalize/pkg/domain-errors"
	"renalize/pkg/platform/events"
)

const (
	ErrMsgRegisterFailed = "Failed to register patient"
	ErrMsgFetchFailed    = "Failed to fetch profile"
)

// Registration carries the fields the user enters on the enrollment form.
// Everything identity-related comes from the cache, not from here.
type Registration struct {
	IncomeLevel               api.IncomeLevel
	HealthCondition           api.HealthCondition
	PrimaryDoctorName         string
	PrimaryHealthcareProvider string
	UHID                      string
}

// Service registers the caller as a patient and fetches their record.
type Service struct {
	gateway gateway.Gateway
	store   cache.Store
	tokens  token.Source
	logger  *slog.Logger
	events  events.Publisher
}

// Option configures the Service.
type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithEventPublisher(p events.Publisher) Option {
	return func(s *Service) {
		s.events = p
	}
}

func New(gw gateway.Gateway, store cache.Store, tokens token.Source, opts ...Option) *Service {
	s := &Service{
		gateway: gw,
		store:   store,
		tokens:  tokens,
		logger:  slog.Default(),
		events:  events.NoopPublisher{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register builds the patient profile from the cached KYC fields plus the
// enrollment form and submits it. Aadhar data is mandatory; PAN and bank
// details are attached only when their KYC step has completed.
func (s *Service) Register(ctx context.Context, reg Registration) *result.Stream[result.Unit] {
	stream := result.NewStream[result.Unit]()
	stream.Loading()

	go func() {
		uid, err := s.register(ctx, reg)

		outcome := "success"
		if err != nil {
			outcome = "error"
			s.logger.Error("patient registration failed", "error", err)
		}
		s.publish(ctx, uid, events.ActionPatientRegister, outcome)

		if err != nil {
			stream.Fail(ErrMsgRegisterFailed)
			return
		}
		stream.Succeed(result.Unit{})
	}()

	return stream
}

func (s *Service) register(ctx context.Context, reg Registration) (string, error) {
	idToken, err := s.tokens.Token(ctx)
	if err != nil {
		return "", err
	}
	uid, err := token.UserID(idToken)
	if err != nil {
		return "", err
	}

	req, err := s.assemble(ctx, reg)
	if err != nil {
		return uid, err
	}
	if err := s.gateway.AddPatient(ctx, req); err != nil {
		return uid, err
	}

	// Remembered locally so the passbook and profile screens can label
	// the record without a round trip.
	if err := s.store.PutString(ctx, cache.KeyUHID, reg.UHID); err != nil {
		return uid, err
	}
	return uid, nil
}

func (s *Service) assemble(ctx context.Context, reg Registration) (api.AddPatientRequest, error) {
	var req api.AddPatientRequest

	contact, err := s.store.GetString(ctx, cache.KeyMobileNumber)
	if err != nil {
		return req, err
	}
	if contact == "" {
		return req, dErrors.New(dErrors.CodeInvalidInput, "no contact number on record")
	}

	aadhar, err := s.aadharData(ctx)
	if err != nil {
		return req, err
	}
	if aadhar == nil {
		return req, dErrors.New(dErrors.CodeInvalidInput, "aadhar verification incomplete")
	}

	pan, err := s.panData(ctx)
	if err != nil {
		return req, err
	}
	bank, err := s.bankData(ctx)
	if err != nil {
		return req, err
	}

	return api.AddPatientRequest{
		ContactNum: contact,
		KYCData: api.KYCData{
			AadharData:      aadhar,
			PANData:         pan,
			BankAccountData: bank,
			IncomeLevel:     reg.IncomeLevel,
		},
		PrimaryDoctorName:         reg.PrimaryDoctorName,
		PrimaryHealthcareProvider: reg.PrimaryHealthcareProvider,
		UHID:                      reg.UHID,
		HealthCondition:           reg.HealthCondition,
	}, nil
}

func (s *Service) aadharData(ctx context.Context) (*api.AadharData, error) {
	fields, err := s.readAll(ctx,
		cache.KeyAadharNumber,
		cache.KeyAadharName,
		cache.KeyAadharDOB,
		cache.KeyGender,
		cache.KeyAddressStreet,
		cache.KeyAddressCity,
		cache.KeyAddressState,
		cache.KeyAddressPincode,
	)
	if err != nil {
		return nil, err
	}
	if fields[cache.KeyAadharNumber] == "" {
		return nil, nil
	}
	return &api.AadharData{
		AadharNumber: fields[cache.KeyAadharNumber],
		Name:         fields[cache.KeyAadharName],
		DateOfBirth:  fields[cache.KeyAadharDOB],
		Gender:       api.Gender(fields[cache.KeyGender]),
		Address: api.Address{
			Street:  fields[cache.KeyAddressStreet],
			City:    fields[cache.KeyAddressCity],
			State:   fields[cache.KeyAddressState],
			Pincode: fields[cache.KeyAddressPincode],
		},
	}, nil
}

func (s *Service) panData(ctx context.Context) (*api.PANData, error) {
	fields, err := s.readAll(ctx, cache.KeyPANNumber, cache.KeyPANName)
	if err != nil {
		return nil, err
	}
	if fields[cache.KeyPANNumber] == "" {
		return nil, nil
	}
	return &api.PANData{
		PANNumber: fields[cache.KeyPANNumber],
		Name:      fields[cache.KeyPANName],
	}, nil
}

func (s *Service) bankData(ctx context.Context) (*api.BankAccountData, error) {
	fields, err := s.readAll(ctx,
		cache.KeyAccountNumber,
		cache.KeyIFSCCode,
		cache.KeyBankName,
		cache.KeyBranchName,
		cache.KeyAccountHolderName,
	)
	if err != nil {
		return nil, err
	}
	if fields[cache.KeyAccountNumber] == "" {
		return nil, nil
	}
	return &api.BankAccountData{
		AccountNumber:     fields[cache.KeyAccountNumber],
		IFSCCode:          fields[cache.KeyIFSCCode],
		BankName:          fields[cache.KeyBankName],
		BranchName:        fields[cache.KeyBranchName],
		AccountHolderName: fields[cache.KeyAccountHolderName],
	}, nil
}

func (s *Service) readAll(ctx context.Context, keys ...string) (map[string]string, error) {
	fields := make(map[string]string, len(keys))
	for _, key := range keys {
		value, err := s.store.GetString(ctx, key)
		if err != nil {
			return nil, err
		}
		fields[key] = value
	}
	return fields, nil
}

// Fetch loads the caller's patient record. A Success carrying nil means the
// caller has not registered yet; only transport or auth failures are Errors.
func (s *Service) Fetch(ctx context.Context) *result.Stream[*api.PatientData] {
	return result.Run(ctx, ErrMsgFetchFailed, func(ctx context.Context) (*api.PatientData, error) {
		resp, err := s.gateway.Patient(ctx)
		if err != nil {
			s.logger.Error("patient fetch failed", "error", err)
			return nil, err
		}
		return resp.PatientData, nil
	})
}

func (s *Service) publish(ctx context.Context, uid string, action events.Action, outcome string) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(ctx, events.New(uid, action, outcome)); err != nil {
		s.logger.Warn("event publish failed", "action", action, "error", err)
	}
}
