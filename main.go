package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/bodul/xwordsetter/internal/dictionary"
)

const corpusLoadTimeout = 2 * time.Minute

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	ctx := context.Background()

	var writer ClueWriter
	if projectID := os.Getenv("GCP_PROJECT_ID"); projectID != "" {
		gemini, err := NewGeminiClient(ctx, projectID, os.Getenv("GCP_REGION"), os.Getenv("GEMINI_MODEL"))
		if err != nil {
			log.Fatalf("Impossible d'initialiser Gemini : %v", err)
		}
		defer gemini.Close()
		writer = gemini
		log.Printf("Client Gemini initialisé (projet: %s)", projectID)
	} else {
		log.Println("GCP_PROJECT_ID non défini — rédaction des définitions désactivée")
	}

	corpus := &Corpus{}
	if src := corpusSource(); src != nil {
		go func() {
			ctx, cancel := context.WithTimeout(ctx, corpusLoadTimeout)
			defer cancel()
			start := time.Now()
			if err := corpus.Load(ctx, src); err != nil {
				log.Printf("Chargement du dictionnaire impossible : %v", err)
				return
			}
			log.Printf("Dictionnaire chargé : %d mots en %s", corpus.Matcher().Len(), time.Since(start).Round(time.Millisecond))
		}()
	} else {
		log.Println("WORDLIST_PATH et WORDLIST_URL non définis — remplissage automatique désactivé")
	}

	srv := NewServer(NewStore(), corpus, writer)
	if v := os.Getenv("GRID_SIZE"); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil || size < 1 || size > maxGridSize {
			log.Fatalf("GRID_SIZE invalide : %q", v)
		}
		srv.defaultSize = size
	}

	httpSrv := &http.Server{
		Addr:              ":" + port,
		Handler:           requestLogger(srv),
		ReadHeaderTimeout: 5 * time.Second,
	}
	log.Printf("Serveur démarré sur http://localhost:%s", port)
	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}

// corpusSource picks the word list from WORDLIST_PATH, else WORDLIST_URL.
func corpusSource() dictionary.Source {
	if path := os.Getenv("WORDLIST_PATH"); path != "" {
		return dictionary.FileSource{Path: path}
	}
	if url := os.Getenv("WORDLIST_URL"); url != "" {
		return dictionary.HTTPSource{URL: url, Client: &http.Client{Timeout: corpusLoadTimeout}}
	}
	return nil
}
