// Package outbox yanıtı bloklamaması gereken yan etkileri (bildirim
// e-postaları gibi) arka planda çalıştırır. Görev hatası loglanır, asla
// çağırana taşınmaz.
package outbox

import (
	"sync"

	"go.uber.org/zap"

	"dugun.link/configs/configslog"
)

// Task adlandırılmış bir yan etki görevi.
type Task struct {
	Name string
	Run  func() error
}

// Outbox görevleri goroutine'lerde koşturur ve kapanışta beklenebilir.
type Outbox struct {
	wg sync.WaitGroup
}

// Default uygulama genelinde paylaşılan outbox.
var Default = &Outbox{}

// Dispatch görevi arka planda başlatır ve hemen döner.
func (o *Outbox) Dispatch(task Task) {
	if task.Run == nil {
		return
	}
	o.wg.Add(1)
	go func() {
		defer o.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				configslog.Log.Error("Outbox görevi panic ile sonlandı",
					zap.String("task", task.Name), zap.Any("panic_info", r))
			}
		}()
		if err := task.Run(); err != nil {
			configslog.Log.Warn("Outbox görevi başarısız",
				zap.String("task", task.Name), zap.Error(err))
		}
	}()
}

// Wait bekleyen tüm görevlerin bitmesini bekler (kapanış ve testler için).
func (o *Outbox) Wait() {
	o.wg.Wait()
}
