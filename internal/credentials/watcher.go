package credentials

import (
	"context"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// Watch observa o diretório de segredos e recarrega o arquivo de credenciais
// correspondente a cada evento de escrita/criação. Bloqueia até o contexto
// ser cancelado.
func (s *Store) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(s.dir); err != nil {
		return err
	}

	logrus.WithField("dir", s.dir).Info("Observando diretório de segredos")

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			if !strings.HasSuffix(event.Name, credExtension) {
				continue
			}

			s.Reload(accountIDFromPath(event.Name))

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logrus.WithError(err).Warn("Erro no watcher de credenciais")
		}
	}
}
