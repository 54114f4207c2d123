package cron

import (
	"context"
	"encoding/json"
	"time"

	"savayas/config"
	appointmentRepo "savayas/database/repository/appointment"
	"savayas/models"
	"savayas/services/notification"
	"savayas/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const (
	TypeAppointmentReminder = "appointment:reminder"
	TypeCompletionSweep     = "appointment:completion-sweep"
)

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPass,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// AsynqReminderScheduler queues reminder tasks for future delivery.
type AsynqReminderScheduler struct {
	client *asynq.Client
}

// NewReminderScheduler builds a scheduler backed by the queue Redis DB.
func NewReminderScheduler() *AsynqReminderScheduler {
	return &AsynqReminderScheduler{client: asynq.NewClient(redisOpts())}
}

func (s *AsynqReminderScheduler) ScheduleReminder(payload models.ReminderPayload, at time.Time) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	task := asynq.NewTask(TypeAppointmentReminder, body)
	_, err = s.client.Enqueue(task, asynq.ProcessAt(at))
	return err
}

func (s *AsynqReminderScheduler) Close() error {
	return s.client.Close()
}

// InitWorker starts the background worker: reminder delivery plus the
// periodic sweep that completes past confirmed appointments.
func InitWorker(appts appointmentRepo.AppointmentRepository, notifSvc notification.NotificationService) {
	logger := utils.GetLogger()

	srv := asynq.NewServer(
		redisOpts(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeAppointmentReminder, handleReminderTask(appts, notifSvc))
	mux.HandleFunc(TypeCompletionSweep, handleCompletionSweep(appts))

	go func() {
		logger.Info("Starting background worker")
		const maxAttempts = 5

		for attempt := 1; attempt <= maxAttempts; attempt++ {
			if err := srv.Run(mux); err != nil {
				logger.Error("Background worker failed to start",
					zap.Int("attempt", attempt), zap.Error(err))
				if attempt == maxAttempts {
					logger.Fatal("Background worker exhausted retries")
				}
				time.Sleep(time.Duration(attempt*2) * time.Second)
			} else {
				break
			}
		}
	}()

	go runCompletionScheduler(logger)
}

// runCompletionScheduler enqueues the completion sweep once an hour.
func runCompletionScheduler(logger *zap.Logger) {
	scheduler := asynq.NewScheduler(redisOpts(), &asynq.SchedulerOpts{})
	task := asynq.NewTask(TypeCompletionSweep, nil)
	if _, err := scheduler.Register("@every 1h", task); err != nil {
		logger.Error("Failed to register completion sweep", zap.Error(err))
		return
	}
	if err := scheduler.Run(); err != nil {
		logger.Error("Completion scheduler stopped", zap.Error(err))
	}
}

func handleReminderTask(appts appointmentRepo.AppointmentRepository, notifSvc notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := utils.GetLogger()

		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("Invalid reminder payload", zap.Error(err))
			return err
		}

		appt, err := appts.GetByID(p.AppointmentID)
		if err != nil {
			return err
		}
		// The appointment may have been cancelled since the reminder was
		// queued. Drop the task without retrying.
		if appt == nil || appt.Status != models.AppointmentConfirmed {
			logger.Info("Skipping reminder for inactive appointment",
				zap.String("appointmentID", p.AppointmentID))
			return nil
		}

		if err := notifSvc.SendAppointmentReminder(appt); err != nil {
			logger.Error("Failed to send appointment reminder",
				zap.String("appointmentID", appt.ID), zap.Error(err))
			return err
		}
		return nil
	}
}

func handleCompletionSweep(appts appointmentRepo.AppointmentRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		n, err := appts.CompletePastConfirmed(time.Now())
		if err != nil {
			utils.GetLogger().Error("Completion sweep failed", zap.Error(err))
			return err
		}
		if n > 0 {
			utils.GetLogger().Info("Completed past appointments", zap.Int64("count", n))
		}
		return nil
	}
}
