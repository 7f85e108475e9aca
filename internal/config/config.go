package config

import (
	"log"

	"github.com/joho/godotenv"
)

func Load() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  Pas de fichier .env — on utilise les variables d'environnement du système")
	} else {
		log.Println("✅ Fichier .env chargé")
	}
}
