package bootstrap

import (
	"context"
	"crypto/tls"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/fulldump/box"

	"github.com/fulldump/ddrmem/api"
	"github.com/fulldump/ddrmem/configuration"
	"github.com/fulldump/ddrmem/service"
	"github.com/fulldump/ddrmem/session"
)

var VERSION = "dev"

func Bootstrap(c *configuration.Configuration) (start, stop func()) {

	sess := session.NewSession(c.SessionConfig())

	b := api.Build(service.NewService(sess), VERSION, c.ApiKey, c.ApiSecret)
	if c.EnableCompression {
		b.WithInterceptors(api.Compression)
	}
	b.WithInterceptors(
		api.AccessLog(log.New(os.Stdout, "ACCESS: ", log.Lshortfile)),
		api.RecoverFromPanic,
		api.PrettyErrorInterceptor,
		api.InterceptorUnavailable(sess),
	)

	s := &http.Server{
		Addr:    c.HttpAddr,
		Handler: box.Box2Http(b),
	}

	if c.HttpsSelfsigned {
		log.Println("HTTPS Selfsigned")
		s.TLSConfig = &tls.Config{
			Certificates: []tls.Certificate{selfSignedCertificate()},
		}
	}

	ln, err := net.Listen("tcp", c.HttpAddr)
	if err != nil {
		log.Println("ERROR:", err.Error())
		os.Exit(-1)
	}
	log.Println("listening on", c.HttpAddr)

	stop = func() {
		sess.Stop()
		s.Shutdown(context.Background())
	}

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGTERM, syscall.SIGINT)
	go func() {
		for {
			sig := <-signalChan
			fmt.Println("Signal received", sig.String())
			stop()
		}
	}()

	start = func() {

		wg := &sync.WaitGroup{}

		wg.Add(1)
		go func() {
			defer wg.Done()
			err := sess.Start()
			if err != nil {
				fmt.Println(err.Error())
				s.Shutdown(context.Background())
			}
		}()

		wg.Add(1)
		go func() {
			defer wg.Done()
			var err error
			if c.HttpsEnabled {
				err = s.ServeTLS(ln, "", "")
			} else {
				err = s.Serve(ln)
			}
			if err != nil && err != http.ErrServerClosed {
				fmt.Println(err.Error())
			}
		}()

		wg.Wait()
	}

	return
}
