package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/s0up4200/swire/signalwire"
)

var (
	smsFrom     string
	smsTo       string
	smsBody     string
	saveSID     bool
	statusWait  time.Duration
	statusPoll  time.Duration
	statusUntil time.Duration
)

var smsCmd = &cobra.Command{
	Use:   "sms",
	Short: "Send SMS and check their delivery status",
}

var smsSendCmd = &cobra.Command{
	Use:   "send",
	Short: "Send an SMS (requires safety.allow_sms)",
	Args:  cobra.NoArgs,
	RunE:  runSMSSend,
}

var smsStatusCmd = &cobra.Command{
	Use:   "status [SID]",
	Short: "Show the status of a sent message",
	Long: `Show the status of a sent message. Without a SID the one saved by
"sms send --save-sid" is used.

--wait sleeps before the first check. --until polls every --poll interval
until the message reaches a final status or the duration elapses.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSMSStatus,
}

func init() {
	rootCmd.AddCommand(smsCmd)
	smsCmd.AddCommand(smsSendCmd, smsStatusCmd)

	smsSendCmd.Flags().StringVar(&smsFrom, "from", "", "sending number (default sms.default_from)")
	smsSendCmd.Flags().StringVar(&smsTo, "to", "", "destination number")
	smsSendCmd.Flags().StringVar(&smsBody, "body", "", "message text")
	smsSendCmd.Flags().BoolVar(&saveSID, "save-sid", false, "write the message SID to sms.sid_file")
	_ = smsSendCmd.MarkFlagRequired("to")
	_ = smsSendCmd.MarkFlagRequired("body")

	smsStatusCmd.Flags().DurationVar(&statusWait, "wait", 0, "delay before checking")
	smsStatusCmd.Flags().DurationVar(&statusUntil, "until", 0, "keep polling until a final status or this much time has passed")
	smsStatusCmd.Flags().DurationVar(&statusPoll, "poll", 5*time.Second, "interval between polls with --until")
}

func runSMSSend(cmd *cobra.Command, args []string) error {
	from := smsFrom
	if from == "" {
		from = cfg.SMS.DefaultFrom
	}
	if from == "" {
		return fmt.Errorf("no sending number: pass --from or set sms.default_from")
	}

	proceed, err := guard(cfg.Safety.AllowSMS, "allow_sms", fmt.Sprintf("send SMS from %s to %s", from, smsTo))
	if err != nil || !proceed {
		return err
	}

	msg, err := client.SendSMS(cmd.Context(), signalwire.SMSMessage{From: from, To: smsTo, Body: smsBody})
	if err != nil {
		return fmt.Errorf("failed to send SMS: %w", err)
	}

	logger.Info().Str("sid", msg.SID).Str("status", msg.Status).Msg("SMS sent")
	printMessage(cmd.OutOrStdout(), msg)

	if saveSID {
		if err := writeSID(cfg.SMS.SIDFile, msg.SID); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "SID saved to %s\n", cfg.SMS.SIDFile)
	}
	return nil
}

func runSMSStatus(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	var sid string
	if len(args) == 1 {
		sid = args[0]
	} else {
		var err error
		if sid, err = readSID(cfg.SMS.SIDFile); err != nil {
			return err
		}
	}

	if err := sleep(ctx, statusWait); err != nil {
		return err
	}

	deadline := time.Now().Add(statusUntil)
	for {
		msg, err := client.GetMessage(ctx, sid)
		if err != nil {
			return fmt.Errorf("failed to get message %s: %w", sid, err)
		}

		status := msg.MessageStatus()
		logger.Debug().Str("sid", sid).Str("status", status.String()).Msg("Message status")

		if status.IsFinal() || statusUntil <= 0 || time.Now().After(deadline) {
			printMessage(cmd.OutOrStdout(), msg)
			return nil
		}
		if err := sleep(ctx, statusPoll); err != nil {
			return err
		}
	}
}

func printMessage(out io.Writer, msg *signalwire.Message) {
	fmt.Fprintf(out, "SID:      %s\n", msg.SID)
	fmt.Fprintf(out, "From:     %s\n", msg.From)
	fmt.Fprintf(out, "To:       %s\n", msg.To)
	fmt.Fprintf(out, "Status:   %s\n", msg.MessageStatus())
	if msg.NumSegments != nil {
		fmt.Fprintf(out, "Segments: %d\n", *msg.NumSegments)
	}
	if msg.Price != nil {
		fmt.Fprintf(out, "Price:    %s %s\n", msg.Price.String(), valueOr(msg.PriceUnit, ""))
	}
	if msg.DateSent != nil {
		fmt.Fprintf(out, "Sent:     %s\n", *msg.DateSent)
	}
	if msg.ErrorCode != nil {
		fmt.Fprintf(out, "Error:    %d %s\n", *msg.ErrorCode, valueOr(msg.ErrorMessage, ""))
	}
}

func writeSID(path, sid string) error {
	if err := os.WriteFile(path, []byte(sid+"\n"), 0o600); err != nil {
		return fmt.Errorf("failed to save message SID: %w", err)
	}
	return nil
}

func readSID(path string) (string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("no SID given and %s does not exist: run sms send --save-sid first", path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read message SID: %w", err)
	}
	sid := strings.TrimSpace(string(data))
	if sid == "" {
		return "", fmt.Errorf("%s is empty", path)
	}
	return sid, nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
