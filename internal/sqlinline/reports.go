package sqlinline

const QDailyRegistrations = `--sql 3161370e-f33a-49f2-b9d2-09a4309d7a9d
select u.created_at::date as day, count(*)
from users u
%s
group by day
order by day;
`

// QDailyLogins counts successful logins only; failed attempts never reach
// the dashboard time series.
const QDailyLogins = `--sql 4dbcf9be-8178-4edf-96be-f15cbf7e7c03
select l.created_at::date as day,
       count(distinct l.user_id) as unique_users,
       count(*) as total_logins
from login_logs l
where l.success
%s
group by day
order by day;
`

const QOnlineDuration = `--sql 2b20e39f-606c-4f27-8c77-df4f75052b67
select u.username,
       l.created_at::date as day,
       coalesce(sum(l.session_seconds), 0) as total_seconds,
       count(*) as session_count
from login_logs l
join users u on u.id = l.user_id
where l.success
%s
group by u.username, day
order by day, u.username;
`

// QOverview takes a nullable [from, to) range; a null bound disables that
// side of the filter for every counter.
const QOverview = `--sql 442432b7-4a40-4e28-90f6-82b7b471febf
select
  (select count(*) from users
     where ($1::timestamptz is null or created_at >= $1)
       and ($2::timestamptz is null or created_at < $2)) as total_users,
  (select count(distinct user_id) from login_logs
     where success
       and ($1::timestamptz is null or created_at >= $1)
       and ($2::timestamptz is null or created_at < $2)) as active_users,
  (select count(*) from generations
     where kind = 'preview'
       and ($1::timestamptz is null or created_at >= $1)
       and ($2::timestamptz is null or created_at < $2)) as total_previews,
  (select count(*) from generations
     where kind = 'paid'
       and ($1::timestamptz is null or created_at >= $1)
       and ($2::timestamptz is null or created_at < $2)) as total_downloads,
  (select count(*) from login_logs
     where success
       and ($1::timestamptz is null or created_at >= $1)
       and ($2::timestamptz is null or created_at < $2)) as total_logins;
`
