package main

import (
    "context"
    "fmt"
    "math"
    "os"
    "sort"
    "strconv"
    "time"

    "github.com/Pulse-Breakout/Backend/config"
    "github.com/Pulse-Breakout/Backend/internal/identity"
    "github.com/Pulse-Breakout/Backend/internal/model"
    "github.com/Pulse-Breakout/Backend/internal/repository"
    "github.com/Pulse-Breakout/Backend/internal/service"
    "github.com/Pulse-Breakout/Backend/pkg/database"
    "github.com/Pulse-Breakout/Backend/pkg/logger"
)

func must[T any](v T, err error) T { if err != nil { panic(err) }; return v }

func pct(vs []time.Duration, p float64) time.Duration {
    if len(vs) == 0 { return 0 }
    xs := append([]time.Duration(nil), vs...)
    sort.Slice(xs, func(i, j int) bool { return xs[i] < xs[j] })
    k := int(math.Ceil(p*float64(len(xs)))) - 1
    if k < 0 { k = 0 }
    if k >= len(xs) { k = len(xs)-1 }
    return xs[k]
}

// 压测消息写入路径：解析发送者身份 + 插入 content + 推进社区活跃时间。
func main() {
    cfg := must(config.Load())
    _ = logger.Init("warn")
    db := must(database.InitDB(cfg))

    userRepo := repository.NewUserRepository(db)
    communityRepo := repository.NewCommunityRepository(db)
    contentRepo := repository.NewContentRepository(db)

    resolver := identity.NewResolver(userRepo, nil, 0)
    userSvc := service.NewUserService(userRepo, resolver)
    communitySvc := service.NewCommunityService(communityRepo, resolver)
    contentSvc := service.NewContentService(contentRepo, communitySvc, resolver)

    N := 2000
    if s := os.Getenv("N"); s != "" {
        if v, e := strconv.Atoi(s); e == nil && v > 0 { N = v }
    }

    ctx := context.Background()
    _ = db.Exec("TRUNCATE TABLE content, depositors, communities, users CASCADE").Error

    sender := must(userSvc.Create(ctx, model.CreateUserDTO{
        Username: "bench", Email: "bench@example.com", Password: "secret01", WalletAddress: "0xbench",
    }))
    community := must(communitySvc.Create(ctx, model.CreateCommunityDTO{
        Name: "bench", CreatorID: sender.ID,
    }))

    writes := make([]time.Duration, 0, N)
    for i := 0; i < N; i++ {
        st := time.Now()
        _, err := contentSvc.Create(ctx, model.CreateContentDTO{
            Content: fmt.Sprintf("msg %d", i), SenderID: sender.ID, CommunityID: community.ID,
        })
        if err != nil { panic(err) }
        writes = append(writes, time.Since(st))
    }

    st := time.Now()
    rows := must(contentSvc.ListByCommunity(ctx, community.ID))
    readCost := time.Since(st)

    var sum time.Duration
    for _, d := range writes { sum += d }
    fmt.Printf("N=%d\n", N)
    fmt.Printf("Content write (resolve+insert+touch): avg=%v p95=%v p99=%v\n", sum/time.Duration(len(writes)), pct(writes, 0.95), pct(writes, 0.99))
    fmt.Printf("ListByCommunity: %v, rows=%d\n", readCost, len(rows))
}
