package main

import (
	"fmt"

	"github.com/spf13/cobra"

	api "renalize/contracts/api"
	"renalize/internal/patient"
	"renalize/internal/state"
)

func registerCmd() *cobra.Command {
	var (
		income    string
		condition string
		doctor    string
		provider  string
		uhid      string
	)

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register as a patient using the verified KYC profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.unlock(cmd); err != nil {
				return err
			}

			r := drain(cmd, a.patientService().Register(cmd.Context(), patient.Registration{
				IncomeLevel:               api.IncomeLevel(income),
				HealthCondition:           api.HealthCondition(condition),
				PrimaryDoctorName:         doctor,
				PrimaryHealthcareProvider: provider,
				UHID:                      uhid,
			}))
			if r.IsError() {
				return fmt.Errorf("%s", r.Message())
			}
			fmt.Fprintln(cmd.OutOrStdout(), "registered")
			return nil
		},
	}

	cmd.Flags().StringVar(&income, "income", string(api.IncomeLessThan2), "annual income bracket")
	cmd.Flags().StringVar(&condition, "condition", string(api.ConditionChronicKidneyDisease), "health condition program")
	cmd.Flags().StringVar(&doctor, "doctor", "", "primary doctor name")
	cmd.Flags().StringVar(&provider, "provider", "", "primary healthcare provider")
	cmd.Flags().StringVar(&uhid, "uhid", "", "health program UHID")
	_ = cmd.MarkFlagRequired("uhid")
	return cmd
}

func profileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profile",
		Short: "Show the registered patient record",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.unlock(cmd); err != nil {
				return err
			}

			screen := state.NewProfileHolder()
			screen.Bind(a.patientService().Fetch(cmd.Context()))

			switch s := screen.Current().(type) {
			case state.ProfileRegistered:
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "patient id: %s\n", s.Patient.PatientID)
				fmt.Fprintf(out, "uhid:       %s\n", s.Patient.UHID)
				fmt.Fprintf(out, "contact:    %s\n", s.Patient.ContactNum)
				fmt.Fprintf(out, "condition:  %s\n", s.Patient.HealthCondition)
				return nil
			case state.ProfileUnregistered:
				fmt.Fprintln(cmd.OutOrStdout(), "not registered yet, run `renalize register`")
				return nil
			case state.ProfileFailed:
				return fmt.Errorf("%s", s.Message)
			default:
				return fmt.Errorf("fetch did not finish")
			}
		},
	}
}
