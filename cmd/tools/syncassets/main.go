// Command syncassets pushes the product image files to the configured
// storage driver under their stable keys, so the S3 deployment serves
// the same URLs the local dev server does. With -prune, images that
// have been removed from the source directory are deleted from the
// driver instead of skipped.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"mime"
	"os"
	"path/filepath"
	"sort"

	"github.com/joho/godotenv"

	"github.com/castororo/Rajabakkiam-traders/internal/storage"
)

func main() {
	prune := flag.Bool("prune", false, "delete driver copies of images missing from the source directory")
	flag.Parse()

	_ = godotenv.Load()

	srcDir := "./static/img"
	if v := os.Getenv("LOCAL_ASSET_DIR"); v != "" {
		srcDir = v
	}

	ctx := context.Background()
	res, err := storage.FromEnv(ctx)
	if err != nil {
		log.Fatalf("init storage: %v", err)
	}

	files := storage.Files()
	keys := make([]string, 0, len(files))
	for k := range files {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		name := files[key]
		path := filepath.Join(srcDir, name)

		f, err := os.Open(path)
		if err != nil {
			if *prune {
				if err := res.Storage.Delete(ctx, name); err != nil {
					log.Printf("prune %s: %v", name, err)
				} else {
					fmt.Printf("%-20s pruned\n", key)
				}
			} else {
				log.Printf("skip %s: %v", name, err)
			}
			continue
		}

		info, _ := f.Stat()
		out, err := res.Storage.Put(ctx, f, storage.PutInput{
			Key:         name,
			Filename:    name,
			ContentType: mime.TypeByExtension(filepath.Ext(name)),
			Size:        info.Size(),
		})
		f.Close()
		if err != nil {
			log.Fatalf("upload %s: %v", name, err)
		}
		fmt.Printf("%-20s -> %s\n", key, out.URL)
	}
}
